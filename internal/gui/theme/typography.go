package theme

type Typography struct {
	Title      int32
	Header     int32
	Body       int32
	Small      int32
	LineFactor float32
}

var Type = Typography{
	Title:      40,
	Header:     24,
	Body:       21,
	Small:      16,
	LineFactor: 1.4,
}
