package domain

// MsgUserExists is returned with a nil InsertedID when the email is already registered
const MsgUserExists = "user already exists"

// InsertResult mirrors a document store insert acknowledgement
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

// UpdateResult mirrors a document store update acknowledgement
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult mirrors a document store delete acknowledgement
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Inserted builds an acknowledged InsertResult for id
func Inserted(id string) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}

// AlreadyExists is the insert-if-absent sentinel
func AlreadyExists() InsertResult {
	return InsertResult{Acknowledged: true, Message: MsgUserExists}
}
