package render

// PlaceholderColour fills the swatch row when the palette is empty.
const PlaceholderColour = "whitesmoke"

// Swatch is a UI-ready record for one entry of the swatch row.
type Swatch struct {
	Color       string `json:"color"`
	ShowText    bool   `json:"show_text"`
	ShowDivider bool   `json:"show_divider"`
	Highlighted bool   `json:"highlighted"`
}

// SwatchRow projects the palette into swatch records, one per colour in
// palette order. An empty palette yields a single neutral placeholder.
func SwatchRow(palette []string, cfg Config) []Swatch {
	colors := palette
	if len(colors) == 0 {
		colors = []string{PlaceholderColour}
	}

	row := make([]Swatch, len(colors))
	for i, c := range colors {
		row[i] = Swatch{
			Color:       c,
			ShowText:    cfg.EmbedValues,
			ShowDivider: cfg.ShowDivider,
			Highlighted: cfg.Highlight,
		}
	}
	return row
}
