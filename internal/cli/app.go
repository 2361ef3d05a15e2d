package cli

import (
	"fmt"

	"github.com/natvega/tasktique/internal/api"
	"github.com/natvega/tasktique/internal/config"
	"github.com/natvega/tasktique/internal/kv"
	"github.com/natvega/tasktique/internal/store"
)

// app bundles the wired-up stores a command operates on. Each CLI
// invocation builds a fresh one; the local mirror is filled by an
// initial refresh where a command needs it.
type app struct {
	cfg   *config.Config
	kv    *kv.Store
	tasks *store.TaskStore
	tags  *store.TagStore
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	kvs, err := kv.Open(cfg.Data.StatePath)
	if err != nil {
		return nil, err
	}

	notify := termNotifier{}
	tasks := store.NewTaskStore(api.NewClient(cfg.Service.BaseURL), notify)
	tags, err := store.NewTagStore(kvs, tasks, notify)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, kv: kvs, tasks: tasks, tags: tags}, nil
}

// termNotifier prints success notifications to the terminal. Failures
// are not printed here: store errors propagate out of each command and
// cobra reports them once on stderr.
type termNotifier struct{}

func (termNotifier) Success(msg string) {
	fmt.Println(msg)
}

func (termNotifier) Error(string) {}
