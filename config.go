package spritesheet

// SheetConfig is the file representation of Options, as read from a YAML
// config file by the spritegen CLI.
type SheetConfig struct {
	Mode    string  `yaml:"mode"`
	Padding int     `yaml:"padding"`
	Columns int     `yaml:"columns"`
	Scale   float64 `yaml:"scale"`
}

// Options converts the file representation to engine options. An empty
// mode string keeps the default.
func (c SheetConfig) Options() (Options, error) {
	o := Options{
		Padding: c.Padding,
		Columns: c.Columns,
		Scale:   c.Scale,
	}
	if c.Mode != "" {
		m, err := ParseMode(c.Mode)
		if err != nil {
			return Options{}, err
		}
		o.Mode = m
	}
	return o, nil
}
