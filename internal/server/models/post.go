package models

import "time"

// Post is a wall post. RepliesToPost is 0 for a top-level post, otherwise
// the id of the parent post (no referential integrity is enforced).
// PostFrom is the author, PostTo the wall owner. Date is server-assigned
// at creation.
type Post struct {
	ID            int64     `db:"id"`
	RepliesToPost int64     `db:"replies_to_post"`
	PostFrom      int64     `db:"post_from"`
	PostTo        int64     `db:"post_to"`
	Title         string    `db:"title"`
	Date          time.Time `db:"date"`
	Text          string    `db:"text"`
}
