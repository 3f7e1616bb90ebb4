package models

// Horse is a horse profile. OwnerID references the owning User and is
// immutable after creation; only the owner may mutate the record.
type Horse struct {
	ID         int64  `db:"id"`
	OwnerID    int64  `db:"owner_id"`
	Name       string `db:"name"`
	City       string `db:"city"`
	State      string `db:"state"`
	Country    string `db:"country"`
	Birthday   string `db:"birthday"`
	PageImage  string `db:"page_image"`
	Discipline string `db:"discipline"`
	About      string `db:"about"`
	Award      string `db:"award"`
}
