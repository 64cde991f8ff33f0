// Package settings defines application-level configuration data.
package settings

// Data sources the feed can be backed by.
const (
	DataSourceFixture = "fixture"
	DataSourceFake    = "fake"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Left     string `yaml:"left" kong:"help='Previous grid column key',default='h,left'"`
	Right    string `yaml:"right" kong:"help='Next grid column key',default='l,right'"`
	UpPage   string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top      string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom   string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open     string `yaml:"open" kong:"help='Activate/open key',default='enter,space'"`
	Bookmark string `yaml:"bookmark" kong:"help='Bookmark key',default='b'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted  string `yaml:"muted" kong:"help='Secondary text color',default='244'"`
	Border string `yaml:"border" kong:"help='Card border color',default='63'"`
}

// Settings represents the application configuration.
type Settings struct {
	DataSource     string       `yaml:"data_source" kong:"help='Feed data source (fixture/fake)',default='fixture'"`
	TopicsFile     string       `yaml:"topics_file" kong:"help='YAML topics fixture path (empty for built-in)'"`
	NewsFile       string       `yaml:"news_file" kong:"help='RSS/Atom news fixture path (empty for built-in)'"`
	FollowedTopics []int        `yaml:"followed_topics" kong:"help='Topic IDs followed at start-up; skips topic selection when set'"`
	LogFile        string       `yaml:"log_file" kong:"help='Log file path'"`
	LogLevel       string       `yaml:"log_level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
	KeyMap         KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme          ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
}

// HasInitialTopics reports whether topic selection should be skipped.
func (s Settings) HasInitialTopics() bool {
	return len(s.FollowedTopics) > 0
}
