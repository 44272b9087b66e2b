package services

import (
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/store"
	"sort"
	"sync"
)

type SubscriberServiceInterface interface {
	Add(userID int64) bool
	Remove(userID int64) bool
	IsSubscribed(userID int64) bool
	All() []int64
}

// SubscriberService tracks which users receive the daily message. The list
// is de-duplicated and sorted on every save.
type SubscriberService struct {
	store  *store.FlatStore
	logger providers.Logger
	mu     sync.Mutex
}

func NewSubscriberService(flatStore *store.FlatStore, logger providers.Logger) SubscriberServiceInterface {
	return &SubscriberService{store: flatStore, logger: logger}
}

func (ss *SubscriberService) load() *models.SubscriberList {
	doc := &models.SubscriberList{}
	ss.store.Load(store.DocSubscribers, doc)
	return doc
}

func (ss *SubscriberService) save(doc *models.SubscriberList) bool {
	seen := make(map[int64]struct{}, len(doc.Users))
	deduped := make([]int64, 0, len(doc.Users))
	for _, id := range doc.Users {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	sort.Slice(deduped, func(i, j int) bool { return deduped[i] < deduped[j] })
	doc.Users = deduped
	return ss.store.Save(store.DocSubscribers, doc)
}

// Add subscribes a user. Adding an already-subscribed user is a success.
func (ss *SubscriberService) Add(userID int64) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	doc := ss.load()
	for _, id := range doc.Users {
		if id == userID {
			ss.logger.Infof(providers.TypeApp, "User %d is already subscribed", userID)
			return true
		}
	}

	doc.Users = append(doc.Users, userID)
	if !ss.save(doc) {
		ss.logger.Errorf(providers.TypeApp, "Failed to save subscription for user %d", userID)
		return false
	}
	ss.logger.Infof(providers.TypeApp, "Added user %d to subscriptions (%d total)", userID, len(doc.Users))
	return true
}

// Remove unsubscribes a user. Returns false when the user was not subscribed.
func (ss *SubscriberService) Remove(userID int64) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	doc := ss.load()
	kept := doc.Users[:0]
	found := false
	for _, id := range doc.Users {
		if id == userID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		return false
	}

	doc.Users = kept
	if !ss.save(doc) {
		ss.logger.Errorf(providers.TypeApp, "Failed to save after removing user %d", userID)
		return false
	}
	ss.logger.Infof(providers.TypeApp, "Removed user %d from subscriptions", userID)
	return true
}

func (ss *SubscriberService) IsSubscribed(userID int64) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	for _, id := range ss.load().Users {
		if id == userID {
			return true
		}
	}
	return false
}

func (ss *SubscriberService) All() []int64 {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.load().Users
}
