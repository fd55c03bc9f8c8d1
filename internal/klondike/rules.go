package klondike

// Rules configures the variant being played.
type Rules struct {
	// DrawSize is the number of cards moved to waste per DRAW. Must be >= 1.
	DrawSize int
	// TableauSize is the number of tableau columns. Must be >= 1.
	TableauSize int
}

// DefaultRules returns the conventional Klondike configuration.
func DefaultRules() Rules {
	return Rules{DrawSize: 3, TableauSize: 7}
}

// Normalize clamps out-of-range values to the defaults, so a Rules value
// read from user input or a config file is always safe to deal with.
func (r Rules) Normalize() Rules {
	if r.DrawSize < 1 {
		r.DrawSize = DefaultRules().DrawSize
	}
	if r.TableauSize < 1 {
		r.TableauSize = DefaultRules().TableauSize
	}
	return r
}
