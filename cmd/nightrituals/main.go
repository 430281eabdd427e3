package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"nightrituals/internal/analytics"
	"nightrituals/internal/cmdlog"
	"nightrituals/internal/config"
	"nightrituals/internal/ident"
	"nightrituals/internal/logging"
	"nightrituals/internal/market"
	"nightrituals/internal/metrics"
	"nightrituals/internal/model"
	"nightrituals/internal/simulate"
	"nightrituals/internal/storage"
	"nightrituals/internal/store"
	"nightrituals/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "run":
		cmdRun()
	case "seed":
		cmdSeed()
	case "profile":
		cmdProfile()
	case "post":
		cmdPost()
	case "comment":
		cmdComment()
	case "chat":
		cmdChat()
	case "vote":
		cmdVote()
	case "cart":
		cmdCart()
	case "export":
		cmdExport()
	case "import":
		cmdImport()
	case "stats":
		cmdStats()
	case "market":
		cmdMarket()
	case "personas":
		cmdPersonas()
	default:
		printHelp()
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: nightrituals <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./nightrituals.yaml")
	fmt.Println("  run         Run the forum with the activity simulator until interrupted")
	fmt.Println("  seed        Populate an empty dataset with sample posts")
	fmt.Println("  profile     Set the visitor profile")
	fmt.Println("  post        Create a forum post")
	fmt.Println("  comment     Comment on a post")
	fmt.Println("  chat        Send a chat message")
	fmt.Println("  vote        Cast or retract a vote on a post or comment")
	fmt.Println("  cart        Manage the dark market cart")
	fmt.Println("  export      Write the dataset snapshot as JSON")
	fmt.Println("  import      Replace the dataset from a JSON snapshot")
	fmt.Println("  stats       Show hourly activity and category counts")
	fmt.Println("  market      List the dark market catalog")
	fmt.Println("  personas    List the simulated persona roster")
}

func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println("warning: using default config:", err)
		cfg = config.Default()
		cfg.ResolveEnv()
	}
	return cfg
}

func openStore(cfg config.Config) (*store.Store, *storage.KV, error) {
	kv, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store.New(kv), kv, nil
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./nightrituals.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	err := cmdlog.Run("init", func() error {
		return config.Save(*path, config.Default())
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func cmdRun() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)

	st, kv, err := openStore(cfg)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	defer kv.Close()

	theme.PrintBanner()
	if st.SeedSamples() {
		logging.Info("sample_seed", nil)
	}
	metrics.StartServer(cfg.Metrics.Addr)

	sim := simulate.New(st, cfg.Simulator)
	if cfg.Simulator.Enabled {
		sim.Start(func() {
			logging.Info("activity_update", map[string]any{"posts": len(st.Posts(""))})
		})
		defer sim.Stop()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	fmt.Println("\nThe ritual ends. Goodnight.")
}

func cmdSeed() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("seed", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		if st.SeedSamples() {
			fmt.Println("Seeded sample posts and profile.")
		} else {
			fmt.Println("Dataset already has posts; nothing to do.")
		}
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdProfile() {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	nickname := fs.String("nickname", "", "nickname (1-50 characters)")
	avatar := fs.String("avatar", "", "avatar URI")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("profile", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		p := model.Profile{
			ID:        ident.New("user"),
			Nickname:  *nickname,
			Avatar:    *avatar,
			CreatedAt: time.Now().UTC(),
		}
		if existing, ok := st.Profile(); ok {
			// Overwrite semantics: keep the id so authored content stays linked.
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
		}
		if err := model.ValidateProfile(p); err != nil {
			return err
		}
		st.SetProfile(p)
		fmt.Println("Welcome to the night,", p.Nickname)
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdPost() {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	title := fs.String("title", "", "post title (1-200 characters)")
	content := fs.String("content", "", "post body")
	category := fs.String("category", "", "dreams|nightmares|occult|urban-legends|dark-poetry")
	tags := fs.String("tags", "", "comma-separated tags")
	image := fs.String("image", "", "image URI")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("post", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		author, ok := st.Profile()
		if !ok {
			return fmt.Errorf("no profile yet; run: nightrituals profile -nickname <name>")
		}
		p := model.Post{
			ID:        ident.New("post"),
			Title:     *title,
			Content:   *content,
			Category:  model.Category(*category),
			Tags:      splitTags(*tags),
			Image:     *image,
			AuthorID:  author.ID,
			CreatedAt: time.Now().UTC(),
		}
		if err := model.ValidatePost(p); err != nil {
			return err
		}
		st.AddPost(p)
		fmt.Println("Posted:", p.ID)
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdComment() {
	fs := flag.NewFlagSet("comment", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	postID := fs.String("post", "", "post id to comment on")
	content := fs.String("content", "", "comment body")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("comment", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		author, ok := st.Profile()
		if !ok {
			return fmt.Errorf("no profile yet; run: nightrituals profile -nickname <name>")
		}
		c := model.Comment{
			ID:        ident.New("comment"),
			Content:   *content,
			PostID:    *postID,
			AuthorID:  author.ID,
			CreatedAt: time.Now().UTC(),
		}
		if err := model.ValidateComment(c); err != nil {
			return err
		}
		if _, ok := st.Post(*postID); !ok {
			logging.Warn("comment_dangling_post", map[string]any{"postId": *postID})
		}
		st.AddComment(c)
		fmt.Println("Commented:", c.ID)
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdChat() {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	message := fs.String("message", "", "chat message")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("chat", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		author, ok := st.Profile()
		if !ok {
			return fmt.Errorf("no profile yet; run: nightrituals profile -nickname <name>")
		}
		if strings.TrimSpace(*message) == "" {
			return fmt.Errorf("%w: message must not be empty", model.ErrInvalid)
		}
		st.AddChatMessage(model.ChatMessage{
			ID:        ident.New("chat"),
			Content:   *message,
			AuthorID:  author.ID,
			CreatedAt: time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdVote() {
	fs := flag.NewFlagSet("vote", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	target := fs.String("target", "", "post or comment id")
	kind := fs.String("kind", "upvote", "upvote|downvote|none (none retracts)")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("vote", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		voter, ok := st.Profile()
		if !ok {
			return fmt.Errorf("no profile yet; run: nightrituals profile -nickname <name>")
		}
		targetKind := model.TargetComment
		if _, ok := st.Post(*target); ok {
			targetKind = model.TargetPost
		}
		switch *kind {
		case "none":
			st.RemoveVote(voter.ID, *target)
		case string(model.Upvote), string(model.Downvote):
			st.AddVote(model.Vote{
				ID:         ident.New("vote"),
				UserID:     voter.ID,
				TargetKind: targetKind,
				TargetID:   *target,
				Kind:       model.VoteKind(*kind),
			})
		default:
			return fmt.Errorf("%w: unknown vote kind %q", model.ErrInvalid, *kind)
		}
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdCart() {
	fs := flag.NewFlagSet("cart", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	add := fs.String("add", "", "catalog item id to add")
	qty := fs.Int("qty", 1, "quantity to add")
	clear := fs.Bool("clear", false, "empty the cart")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("cart", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		if *clear {
			st.ClearCart()
			fmt.Println("Cart emptied.")
			return nil
		}
		if *add != "" {
			if _, ok := market.Find(*add); !ok {
				return fmt.Errorf("%w: unknown catalog item %q", model.ErrInvalid, *add)
			}
			item := model.CartItem{ItemID: *add, Quantity: *qty}
			if err := model.ValidateCartItem(item); err != nil {
				return err
			}
			st.AddToCart(item)
		}
		total := 0
		for _, it := range st.Cart() {
			entry, _ := market.Find(it.ItemID)
			fmt.Printf("%-18s x%d  %d souls\n", it.ItemID, it.Quantity, entry.Price*it.Quantity)
			total += entry.Price * it.Quantity
		}
		fmt.Println("Total:", total, "souls")
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdExport() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	out := fs.String("out", "", "write snapshot to file instead of stdout")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("export", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		snapshot := st.Export()
		if *out == "" {
			fmt.Println(snapshot)
			return nil
		}
		return os.WriteFile(*out, []byte(snapshot), 0o644)
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	in := fs.String("in", "", "snapshot file to import")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("import", func() error {
		if *in == "" {
			return fmt.Errorf("missing -in <file>")
		}
		b, err := os.ReadFile(*in)
		if err != nil {
			return err
		}
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		if err := st.Import(string(b)); err != nil {
			return err
		}
		fmt.Println("Snapshot imported.")
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	cfgPath := fs.String("config", "./nightrituals.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	err := cmdlog.Run("stats", func() error {
		st, kv, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()
		data := st.Snapshot()
		fmt.Println("Posts by category:")
		counts := analytics.CategoryCounts(data.Posts)
		for _, c := range model.Categories() {
			fmt.Printf("  %-14s %d\n", c, counts[c])
		}
		fmt.Println("Hourly activity:")
		buckets := analytics.HourlyActivity(data)
		for _, k := range analytics.SortedBucketKeys(buckets) {
			fmt.Printf("  %s -> %v\n", k.Format("2006-01-02 15:00"), buckets[k])
		}
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdMarket() {
	fs := flag.NewFlagSet("market", flag.ExitOnError)
	_ = fs.Parse(os.Args[2:])
	theme.PrintBanner()
	for _, it := range market.Items() {
		fmt.Printf("%-18s %3d souls  %s\n", it.ID, it.Price, it.Description)
	}
}

func cmdPersonas() {
	fs := flag.NewFlagSet("personas", flag.ExitOnError)
	_ = fs.Parse(os.Args[2:])
	for _, p := range simulate.Roster() {
		fmt.Printf("%-12s %s\n", p.ID, p.Nickname)
	}
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
