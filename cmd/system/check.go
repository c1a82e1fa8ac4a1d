package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/byfernandatovar/byfernandatovar/config"
	"github.com/byfernandatovar/byfernandatovar/pkg/email"
	redispkg "github.com/byfernandatovar/byfernandatovar/pkg/redis"
	"github.com/byfernandatovar/byfernandatovar/pkg/sanity"
)

// NewCheckCommand verifies the deployment's external dependencies:
// inquiry delivery credentials, the content lake, and Redis if used.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify configuration and external dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			failures := 0
			report := func(name string, err error) {
				if err != nil {
					failures++
					fmt.Printf("  FAIL %s: %v\n", name, err)
					return
				}
				fmt.Printf("  ok   %s\n", name)
			}

			fmt.Println("Checking configuration...")
			report("email", checkEmail(cfg))
			report("sanity", checkSanity(ctx, cfg))
			report("redis", checkRedis(cfg))

			if failures > 0 {
				return fmt.Errorf("%d check(s) failed", failures)
			}
			fmt.Println("All checks passed.")
			return nil
		},
	}

	return cmd
}

func checkEmail(cfg *config.Config) error {
	client, err := email.NewFromCentral(cfg.Email)
	if err != nil {
		return err
	}
	if !client.IsConfigured() {
		return fmt.Errorf("smtp credentials or sender address missing")
	}
	if cfg.Contact.To == "" {
		return fmt.Errorf("contact.to (studio inbox) is not set")
	}
	return nil
}

func checkSanity(ctx context.Context, cfg *config.Config) error {
	client := sanity.New(sanity.FromCentralConfig(cfg.Sanity))
	cats, err := client.PortfolioCategories(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		return fmt.Errorf("content lake reachable but no portfolio categories found")
	}
	return nil
}

func checkRedis(cfg *config.Config) error {
	if cfg.Redis.Addr == "" {
		if cfg.Contact.RateLimit.Store == "redis" {
			return fmt.Errorf("contact limiter set to redis but redis.addr is empty")
		}
		return nil
	}
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return err
	}
	return rdb.Close()
}
