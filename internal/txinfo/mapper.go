package txinfo

import "strings"

var knownAddresses = map[string]string{
	"0x7a250d5630b4cf539739df2c5dacb4c659f2488d": "Uniswap v.2",
}

// Mapper resolves well known addresses to human readable titles.
type Mapper struct {
	titles map[string]string
}

// NewMapper returns a mapper over the built in titles extended by extra. Keys are case insensitive.
func NewMapper(extra map[string]string) *Mapper {
	titles := make(map[string]string, len(knownAddresses)+len(extra))
	for address, title := range knownAddresses {
		titles[address] = title
	}
	for address, title := range extra {
		titles[strings.ToLower(address)] = title
	}

	return &Mapper{titles: titles}
}

func (m *Mapper) Title(address string) (string, bool) {
	title, found := m.titles[strings.ToLower(address)]
	return title, found
}

// Map returns the title of address, or address itself if it is not known.
func (m *Mapper) Map(address string) string {
	if title, found := m.Title(address); found {
		return title
	}

	return address
}
