package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data generation settings.
type Config struct {
	Users           int     `yaml:"users"             env:"SEEDER_USERS"             env-default:"20"`
	FriendsPerUser  int     `yaml:"friends_per_user"  env:"SEEDER_FRIENDS_PER_USER"  env-default:"3"`
	PollsPerUser    int     `yaml:"polls_per_user"    env:"SEEDER_POLLS_PER_USER"    env-default:"2"`
	VoteProbability float64 `yaml:"vote_probability"  env:"SEEDER_VOTE_PROBABILITY"  env-default:"0.6"`
	CommentsPerPoll int     `yaml:"comments_per_poll" env:"SEEDER_COMMENTS_PER_POLL" env-default:"2"`
	Password        string  `yaml:"password"          env:"SEEDER_PASSWORD"          env-default:"seed-password"`
	EmailDomain     string  `yaml:"email_domain"      env:"SEEDER_EMAIL_DOMAIN"      env-default:"seed.example.com"`
	RandomSeed      uint64  `yaml:"random_seed"       env:"SEEDER_RANDOM_SEED"       env-default:"1"`
	DryRun          bool    `yaml:"dry_run"           env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, cfg.validate()
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch {
	case c.Users < 1:
		return fmt.Errorf("seeder config: users must be at least 1")
	case c.FriendsPerUser < 0 || c.PollsPerUser < 0 || c.CommentsPerPoll < 0:
		return fmt.Errorf("seeder config: per-user and per-poll counts must be non-negative")
	case c.VoteProbability < 0 || c.VoteProbability > 1:
		return fmt.Errorf("seeder config: vote_probability must be within [0, 1]")
	case len(c.Password) < 8:
		return fmt.Errorf("seeder config: password must be at least 8 characters")
	}
	return nil
}
