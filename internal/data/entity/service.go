package entity

type Service struct {
	Base
	Name        string   `db:"name"`
	Price       int64    `db:"price"` // per unit per day, smallest currency unit
	DescShort   string   `db:"desc_short"`
	DescLong    string   `db:"desc_long"`
	Images      []string `db:"images"`
	IsAvailable bool     `db:"is_available"`
}
