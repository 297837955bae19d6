// Package settings defines application-level configuration data.
package settings

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j'"`
	Left     string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right    string `yaml:"right" kong:"help='Right/Open key',default='l'"`
	UpPage   string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top      string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom   string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open     string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back     string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Refresh  string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	Favorite string `yaml:"favorite" kong:"help='Toggle favorite key',default='f'"`
	Browse   string `yaml:"browse" kong:"help='Open in browser key',default='o'"`
	Retry    string `yaml:"retry" kong:"help='Retry failed fetch key',default='R'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent      string `yaml:"accent" kong:"help='Accent color',default='205'"`
	SectionName string `yaml:"section_name" kong:"help='Section header color',default='244'"`
	Favorite    string `yaml:"favorite" kong:"help='Favorite marker color',default='220'"`
}

// LayoutConfig defines adaptive layout behavior.
type LayoutConfig struct {
	// Breakpoint is the terminal width in columns above which the list
	// and detail panes are shown side by side.
	Breakpoint int `yaml:"breakpoint" kong:"help='List/detail breakpoint in columns',default='100'"`
}

// Settings represents the application configuration.
type Settings struct {
	Feeds         []string     `yaml:"feeds" kong:"help='RSS/Atom Feed URLs',default='https://news.ycombinator.com/rss'"`
	KeyMap        KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme         ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Layout        LayoutConfig `yaml:"layout" kong:"embed,prefix='layout.'"`
	FavoritesFile string       `yaml:"favorites_file" kong:"help='Favorites database path'"`
}
