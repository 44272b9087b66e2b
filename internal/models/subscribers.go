package models

// SubscriberList is the persisted subscriber document. User ids are the
// numeric chat ids handed out by the transport platform.
type SubscriberList struct {
	Users []int64 `json:"users"`
}
