package simulate

import "nightrituals/internal/model"

// Fixed content pools the generators draw from.

var chatLines = []string{
	"The shadows grow longer tonight...",
	"Has anyone else felt the presence in their room?",
	"I found something in my grandmother's attic",
	"The ritual worked... too well",
	"3:33 AM again. They're back.",
	"The mirror shows things that aren't there",
	"I can hear voices in the static",
	"Something followed me home from the cemetery",
	"The candles keep lighting themselves",
	"Did you see that shadow move?",
	"The old book speaks in tongues",
	"My dreams are bleeding into reality",
	"The darkness has a name now",
	"I shouldn't have read those words aloud",
	"There's a face in my coffee...",
	"The wind whispers secrets",
	"My reflection blinked first",
	"The basement door opened by itself",
	"Something scratched my name in the dust",
	"The photographs change when I'm not looking",
	"I heard my name called from the forest",
	"The music box plays at midnight",
	"My shadow moved without me",
	"There are footsteps in the attic",
	"The pendulum swings backwards now",
	"I found a door that wasn't there yesterday",
	"The ravens know my secrets",
	"My hands wrote words I don't remember",
	"The clock strikes thirteen",
	"Something breathes under my bed",
}

var microfeedThoughts = []string{
	"In the space between heartbeats, eternity whispers.",
	"Today I learned that mirrors lie, but shadows tell the truth.",
	"The silence after midnight has weight to it.",
	"Found an old key. It fits every door in my nightmares.",
	"Sometimes I wonder if my thoughts are my own.",
	"The stars spelled out my name last night. I'm terrified.",
	"Collected three black feathers today. The ritual begins.",
	"My coffee tastes like forgotten memories.",
	"The void stared back and I didn't look away.",
	"Dreamed in a language I don't speak but understand perfectly.",
	"My shadow grew longer while the sun stayed still.",
	"The roses in my garden bloomed black this morning.",
	"I can taste colors in the dark now.",
	"Time moves differently in old houses.",
	"The wind carries names of people who never existed.",
	"My reflection aged while I watched.",
	"Found poetry written in dust on my bookshelf.",
	"The moon followed me home again.",
	"I speak to spiders now. They listen.",
	"My dreams left footprints on the bedroom floor.",
	"The rain whispers secrets only I can hear.",
	"I swear my books rearrange themselves at night.",
	"The darkness has a texture like velvet.",
	"My tea leaves read my future and wept.",
	"I found a letter I wrote but never remember writing.",
	"The static on old radios speaks in Latin.",
	"My heartbeat sounds like morse code now.",
	"The wallpaper pattern shifted when I wasn't looking.",
	"I taste copper when I think about tomorrow.",
	"The night feels different since I learned its true name.",
}

// postEntry is one catalog entry for generated forum posts.
type postEntry struct {
	title   string
	content string
	tags    []string
}

var postsByCategory = map[model.Category][]postEntry{
	model.CategoryDreams: {
		{
			title: "The Recurring Gallery Dream",
			content: "Every night for three weeks, I've dreamed of the same art gallery. It's filled with " +
				"paintings that move when I'm not looking directly at them. The faces in the portraits follow " +
				"me, and their eyes grow sadder each time I visit. Last night, I found a painting of myself " +
				"sleeping. I looked so peaceful, but there was something standing behind my bed that I couldn't " +
				"make out. When I woke up, I found paint under my fingernails.",
			tags: []string{"dreams", "paintings", "recurring", "gallery"},
		},
		{
			title: "Dreaming in Color-Sound",
			content: "I discovered I can hear colors in my dreams. Purple tastes like midnight rain, and red " +
				"sounds like whispered confessions. Blue feels like being underwater while breathing perfectly. " +
				"But there's one color I've never seen awake - a shade between silver and starlight that screams " +
				"in perfect harmony. I've been trying to paint it for months, but my waking hands can't remember " +
				"the technique my sleeping mind knows so well.",
			tags: []string{"dreams", "synesthesia", "colors", "artistic"},
		},
		{
			title: "The Library of Unwritten Books",
			content: "In my dreams, I visit a vast library where all the books contain stories that were never " +
				"written. I can open any book and read complete novels, poems, and plays that exist nowhere in " +
				"the waking world. The librarian is an elderly woman who knows every story by heart. She told me " +
				"that when I die, any story I remember from the dream library will cease to exist forever. The " +
				"pressure of remembering is overwhelming.",
			tags: []string{"dreams", "library", "stories", "memory"},
		},
	},
	model.CategoryNightmares: {
		{
			title: "The Elevator That Goes Down Forever",
			content: "It started as a normal elevator ride to the parking garage. But the elevator just kept " +
				"going down. Past the garage, past the basement, past floors that shouldn't exist. The display " +
				"showed negative numbers: -15, -23, -45. Other people got on at floors that had no business " +
				"existing. They all stared at me with empty eye sockets. When I finally woke up, I was standing " +
				"in my building's elevator at 3 AM, and the display read -1.",
			tags: []string{"nightmare", "elevator", "endless", "basement"},
		},
		{
			title: "My Reflection Lives Independently",
			content: "I noticed it first in the bathroom mirror. My reflection was brushing its teeth a second " +
				"after I stopped. Then it started making different expressions. Now it follows me to every " +
				"reflective surface with a look of growing hatred. Yesterday, I covered all the mirrors in my " +
				"house, but I can still see it in my phone screen, in windows, in puddles. It's getting " +
				"stronger. Sometimes I catch myself making its expressions without realizing it.",
			tags: []string{"nightmare", "reflection", "mirror", "possession"},
		},
		{
			title: "The Backwards Day",
			content: "I keep having the same nightmare where I live an entire day backwards. I start by going to " +
				"bed in my grave, then walking backwards through my death, my old age, my adult life. Every step " +
				"backwards is more terrifying because I know what comes next, but I can't change anything. The " +
				"worst part is the moment just before I'm born - I can see all the pain I'll cause others, and " +
				"I'm helpless to prevent it. I always wake up when I reach the moment of my birth.",
			tags: []string{"nightmare", "time", "backwards", "death"},
		},
	},
	model.CategoryOccult: {
		{
			title: "Grandmother's Ritual Circle",
			content: "Cleaning out my grandmother's house, I found a circle of salt in the basement with symbols " +
				"I'd never seen before. Each symbol was carved into small bones arranged around a single black " +
				"candle. When I touched one of the bones, I instantly understood what each symbol meant, as if " +
				"the knowledge had always been in my mind. Now I find myself drawing these symbols everywhere - " +
				"in condensation on windows, in the sand at beaches, in the frost on my car. I can't stop, and " +
				"each time I complete a symbol, something in my peripheral vision moves.",
			tags: []string{"occult", "ritual", "symbols", "grandmother"},
		},
		{
			title: "The Book That Reads You Back",
			content: "I bought an old grimoire at an estate sale. The text changes depending on who's reading it " +
				"and what they need to know. But I realized it's not just showing me spells - it's learning " +
				"about me. The margins now contain notes in my handwriting that I don't remember making. They " +
				"detail my fears, my secrets, my deepest desires. Last night I found a page titled 'How to Bind " +
				"[My Real Name]' written in what looks like my own blood.",
			tags: []string{"occult", "grimoire", "binding", "blood"},
		},
		{
			title: "The Midnight Market",
			content: "There's a market that only exists between 3:33 and 3:34 AM in the abandoned lot downtown. " +
				"The vendors sell things that shouldn't exist: bottled laughter from children who never lived, " +
				"keys to doors in your dreams, photographs of your future corpse. I've been a regular customer " +
				"for months. The cost is never money - always memories, years of your life, or pieces of your " +
				"soul. I'm running out of things to trade, but I can't stop going back.",
			tags: []string{"occult", "market", "soul", "trading"},
		},
	},
	model.CategoryUrbanLegends: {
		{
			title: "The Staircase in the Woods",
			content: "Found a perfectly preserved staircase in the middle of the forest, leading up to nothing. " +
				"Local hikers say it's been there for decades, but no one knows where it came from. I climbed it " +
				"yesterday. At the top, I could see my house from above, but everything was wrong - the rooms " +
				"were arranged differently, there were people inside I didn't recognize, and my own body was " +
				"sitting at the kitchen table, staring directly up at me with solid black eyes.",
			tags: []string{"urban-legend", "forest", "staircase", "parallel"},
		},
		{
			title: "The Radio Station That Doesn't Exist",
			content: "Every night at 2:15 AM, my car radio picks up a station that isn't on any frequency chart. " +
				"It plays music from bands that never existed, news from cities that aren't real, and weather " +
				"reports for tomorrow that always come true. The DJ knows my name and sometimes gives me " +
				"personal advice. Last night he said, 'Stop looking for us, we'll find you when you're ready.' " +
				"When I drove to the station's supposed location, I found only an empty field with a single " +
				"radio antenna buried upside down.",
			tags: []string{"urban-legend", "radio", "dj", "prophecy"},
		},
		{
			title: "The Subway Train to Nowhere",
			content: "There's a train that runs on the abandoned subway line after midnight. The passengers are " +
				"all people who've been reported missing over the past fifty years, but they look exactly the " +
				"same age as when they disappeared. They're all going to the same destination - a station that " +
				"isn't on any map. I almost got on last night. The conductor, a woman who disappeared in 1973, " +
				"smiled at me and said, 'Not yet, but soon.' I found a ticket in my pocket this morning.",
			tags: []string{"urban-legend", "subway", "missing", "ticket"},
		},
	},
	model.CategoryDarkPoetry: {
		{
			title: "Verses Written in Ash",
			content: "I found poetry carved into the walls of a burned house,\nEach word a scar in charcoal and " +
				"regret.\nThe verses speak of love that burns too bright,\nOf hearts that crumble into embers " +
				"when touched.\n\nThe final stanza was still warm:\n'Here lived a poet who loved fire more than " +
				"flesh,\nWho chose to burn rather than write another word,\nWho discovered that some truths can " +
				"only be told\nIn the language of smoke and destruction.'\n\nI copied every word, but when I " +
				"returned, the house was whole again.",
			tags: []string{"dark-poetry", "fire", "love", "destruction"},
		},
		{
			title: "The Syntax of Sorrow",
			content: "Punctuation marks are falling from my eyes,\nCommas like teardrops, periods like blood.\n" +
				"Each sentence I speak leaves marks on the ground,\nSpelling out stories I never meant to " +
				"tell.\n\nMy grandmother reads the grammar of grief\nIn the way I pause between words,\nThe " +
				"semicolons of my shallow breathing,\nThe ellipses of things left unsaid...\n\nShe says some " +
				"stories write themselves\nWhether we want them to or not.",
			tags: []string{"dark-poetry", "grammar", "grief", "grandmother"},
		},
		{
			title: "Midnight Ink",
			content: "The pen writes by itself after midnight,\nFilling pages with words in my handwriting\nThat " +
				"spell out truths I've never spoken,\nSecrets I've buried in the deepest parts of my mind.\n\n" +
				"Each morning I burn the pages,\nBut the words have already been read\nBy shadows that gather in " +
				"the corners,\nBy the darkness that knows my name.\n\nThe pen is running out of ink,\nAnd I'm " +
				"afraid of what happens\nWhen it starts writing in blood.",
			tags: []string{"dark-poetry", "writing", "secrets", "blood"},
		},
	},
}

var commentReplies = []string{
	"This gave me chills... I've experienced something similar.",
	"The same thing happened to my cousin last year.",
	"You should stay away from that place.",
	"I know exactly what you mean. The darkness recognizes its own.",
	"This is why I never go out after midnight anymore.",
	"My grandmother warned me about things like this.",
	"The old rituals still work if you know how to use them.",
	"You're not alone in this. There are others.",
	"I've seen that symbol before, carved into a tree near my house.",
	"The shadows are getting stronger. We need to be careful.",
	"This is beautiful and terrifying at the same time.",
	"Your words speak to something ancient in my soul.",
	"I feel like I've been there in my dreams.",
	"The entities are drawn to stories like this.",
	"You've described my worst nightmare perfectly.",
	"I can't sleep after reading this.",
	"The poetry flows like blood from an open wound.",
	"This place sounds familiar... too familiar.",
	"I think something followed me home after reading this.",
	"The darkness is calling to you through these words.",
}
