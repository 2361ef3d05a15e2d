package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/natvega/tasktique/internal/kv"
	"github.com/natvega/tasktique/internal/util"
)

// Tag is a locally owned label. Tags never leave the machine; the kv
// slot is their system of record.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// tagsKey is the kv slot the serialized tag list lives under.
const tagsKey = "tags"

// defaultTags seeds a fresh install.
var defaultTags = []Tag{
	{ID: "1", Name: "Work", Color: "#9b87f5"},
	{ID: "2", Name: "Personal", Color: "#F97316"},
	{ID: "3", Name: "Study", Color: "#0EA5E9"},
}

// TagStore owns the tag list and keeps it persisted. Deleting a tag also
// prunes it from every task's tag set through the task store.
type TagStore struct {
	mu     sync.Mutex
	tags   []Tag
	kv     *kv.Store
	tasks  *TaskStore
	notify Notifier
}

// NewTagStore loads tags from the kv slot, seeding the defaults when the
// slot is empty.
func NewTagStore(kvs *kv.Store, tasks *TaskStore, notify Notifier) (*TagStore, error) {
	if notify == nil {
		notify = NopNotifier{}
	}
	s := &TagStore{kv: kvs, tasks: tasks, notify: notify}

	raw, ok := kvs.Get(tagsKey)
	if !ok {
		s.tags = append([]Tag(nil), defaultTags...)
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := json.Unmarshal([]byte(raw), &s.tags); err != nil {
		return nil, fmt.Errorf("failed to parse stored tags: %w", err)
	}
	return s, nil
}

// Tags returns a copy of the tag list.
func (s *TagStore) Tags() []Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Tag(nil), s.tags...)
}

// Get looks up a tag by id.
func (s *TagStore) Get(id string) (Tag, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tags {
		if t.ID == id {
			return t, true
		}
	}
	return Tag{}, false
}

// AddTag creates a tag with a locally unique id and appends it.
func (s *TagStore) AddTag(name, color string) (Tag, error) {
	id, err := util.GenerateShortID()
	if err != nil {
		return Tag{}, fmt.Errorf("failed to generate tag id: %w", err)
	}
	tag := Tag{ID: id, Name: name, Color: color}

	s.mu.Lock()
	s.tags = append(s.tags, tag)
	err = s.persist()
	s.mu.Unlock()

	if err != nil {
		return Tag{}, err
	}
	s.notify.Success("Tag created successfully")
	return tag, nil
}

// DeleteTag removes the tag and strips its id from every task. From the
// caller's perspective this is one step; there is no point where the tag
// is gone but still referenced.
func (s *TagStore) DeleteTag(id string) error {
	s.mu.Lock()
	found := false
	tags := s.tags[:0]
	for _, t := range s.tags {
		if t.ID == id {
			found = true
			continue
		}
		tags = append(tags, t)
	}
	s.tags = tags
	if !found {
		s.mu.Unlock()
		return ErrNotFound
	}
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if s.tasks != nil {
		s.tasks.PruneTag(id)
	}
	s.notify.Success("Tag deleted")
	return nil
}

// persist writes the tag list to the kv slot. Callers hold the mutex.
func (s *TagStore) persist() error {
	data, err := json.Marshal(s.tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	if err := s.kv.Set(tagsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist tags: %w", err)
	}
	return nil
}
