package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type BotConfig struct {
	Token   string        `yaml:"token" validate:"required"`
	ApiURL  string        `yaml:"apiUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	Dir       string `yaml:"dir" validate:"required|unixPath"`
	BackupDir string `yaml:"backupDir"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type DailyConfig struct {
	Hour   int `yaml:"hour" validate:"min:0|max:23"`
	Minute int `yaml:"minute" validate:"min:0|max:59"`
}

type QuizConfig struct {
	MaxQuestions int `yaml:"maxQuestions"`
	HistoryLimit int `yaml:"historyLimit"`
	TopN         int `yaml:"topN"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Bot       BotConfig     `yaml:"bot"`
	WebServer Server        `yaml:"webServer"`
	Storage   StorageConfig `yaml:"storage"`
	Daily     DailyConfig   `yaml:"daily"`
	Quiz      QuizConfig    `yaml:"quiz"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
