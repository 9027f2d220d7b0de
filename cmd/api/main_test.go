package main

import (
	"testing"

	"github.com/library-service/cmd/api/config"
	"github.com/matryer/is"
)

func TestRootCmd(t *testing.T) {
	t.Run("scans overdue loans once on memory storage", func(t *testing.T) {
		is := is.New(t)
		cfg := config.Default()
		root := newRootCmd(&cfg)
		root.SetArgs([]string{"scan-overdue", "--storage=memory", "--log-level=error"})

		is.NoErr(root.Execute())
		is.Equal(cfg.Storage, config.StorageMemory)
	})

	t.Run("rejects an invalid configuration", func(t *testing.T) {
		is := is.New(t)
		cfg := config.Default()
		root := newRootCmd(&cfg)
		root.SetArgs([]string{"scan-overdue", "--storage=redis"})

		is.True(root.Execute() != nil)
	})

	t.Run("rejects an unknown migration direction", func(t *testing.T) {
		is := is.New(t)
		cfg := config.Default()
		root := newRootCmd(&cfg)
		root.SetArgs([]string{"migrate", "sideways"})

		is.True(root.Execute() != nil)
	})
}
