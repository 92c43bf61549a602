package entity

type RoomType string

const (
	RoomTypeNormal RoomType = "ROOM_NORMAL"
	RoomTypeVIP    RoomType = "ROOM_VIP"
)

type BedType string

const (
	BedTypeSingle BedType = "SINGLE"
	BedTypeDouble BedType = "DOUBLE"
)

type Room struct {
	Base
	Number      string   `db:"number"` // display number, e.g. "101"
	RoomType    RoomType `db:"room_type"`
	BedType     BedType  `db:"bed_type"`
	Price       int64    `db:"price"` // nightly rate, smallest currency unit
	Img         string   `db:"img"`
	IsAvailable bool     `db:"is_available"`
	IsHidden    bool     `db:"is_hidden"`
}
