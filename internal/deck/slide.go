package deck

// BlockKind tags the variant held by a Block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockBullets
	BlockNumbered
	BlockCallout
	BlockColumns
	BlockCards
	BlockTimeline
	BlockCode
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "Paragraph"
	case BlockBullets:
		return "Bullets"
	case BlockNumbered:
		return "Numbered"
	case BlockCallout:
		return "Callout"
	case BlockColumns:
		return "Columns"
	case BlockCards:
		return "Cards"
	case BlockTimeline:
		return "Timeline"
	case BlockCode:
		return "Code"
	default:
		return "Unknown"
	}
}

// Tone is the accent a block or column is drawn with.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneInfo
	ToneWarn
	ToneGood
	ToneBad
	ToneAccent
)

// Block is one unit of slide body content. Which fields are meaningful
// depends on Kind.
type Block struct {
	Kind     BlockKind
	Tone     Tone
	Text     string          // Paragraph, Callout, Code
	Muted    bool            // Paragraph: secondary text
	Marker   string          // Bullets: item prefix
	Items    []string        // Bullets, Numbered
	Columns  []Column        // Columns
	Cards    []Card          // Cards
	Timeline []TimelineEntry // Timeline
}

// Column is one side of a side-by-side comparison.
type Column struct {
	Heading string
	Tag     string // short label rendered before the heading, e.g. "LLM"
	Tone    Tone
	Blocks  []Block
}

// Card is a titled tile in a grid.
type Card struct {
	Title string
	Body  string
}

// TimelineEntry is one agenda row.
type TimelineEntry struct {
	Label string
	Time  string
}

// Slide is the rendered content of one section: the audience-facing body
// and the presenter-only notes.
type Slide struct {
	Title    string
	Subtitle string
	Body     []Block
	Notes    []string
}

// Producer builds a slide. Producers take no input and share no state.
type Producer func() Slide

// Para returns a paragraph block.
func Para(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// Aside returns a muted paragraph block.
func Aside(text string) Block {
	return Block{Kind: BlockParagraph, Text: text, Muted: true}
}

// Bullets returns an unordered list. An empty marker renders as "•".
func Bullets(marker string, items ...string) Block {
	return Block{Kind: BlockBullets, Marker: marker, Items: items}
}

// Numbered returns an ordered list.
func Numbered(items ...string) Block {
	return Block{Kind: BlockNumbered, Items: items}
}

// Callout returns a highlighted statement.
func Callout(tone Tone, text string) Block {
	return Block{Kind: BlockCallout, Tone: tone, Text: text}
}

// Columns returns a side-by-side block.
func Columns(cols ...Column) Block {
	return Block{Kind: BlockColumns, Columns: cols}
}

// Cards returns a grid of titled tiles.
func Cards(cards ...Card) Block {
	return Block{Kind: BlockCards, Cards: cards}
}

// Timeline returns an ordered list of labelled time slots.
func Timeline(entries ...TimelineEntry) Block {
	return Block{Kind: BlockTimeline, Timeline: entries}
}

// Code returns a preformatted block.
func Code(tone Tone, text string) Block {
	return Block{Kind: BlockCode, Tone: tone, Text: text}
}

// PlainText flattens the body into unstyled lines, one per paragraph, item,
// heading or card field. Notes are not included.
func (s Slide) PlainText() []string {
	var lines []string
	for _, b := range s.Body {
		lines = append(lines, b.plainText()...)
	}
	return lines
}

func (b Block) plainText() []string {
	switch b.Kind {
	case BlockParagraph, BlockCallout, BlockCode:
		return []string{b.Text}
	case BlockBullets, BlockNumbered:
		return append([]string(nil), b.Items...)
	case BlockColumns:
		var out []string
		for _, c := range b.Columns {
			out = append(out, c.Heading)
			for _, inner := range c.Blocks {
				out = append(out, inner.plainText()...)
			}
		}
		return out
	case BlockCards:
		out := make([]string, 0, 2*len(b.Cards))
		for _, c := range b.Cards {
			out = append(out, c.Title, c.Body)
		}
		return out
	case BlockTimeline:
		out := make([]string, 0, len(b.Timeline))
		for _, e := range b.Timeline {
			out = append(out, e.Label+" "+e.Time)
		}
		return out
	}
	return nil
}
