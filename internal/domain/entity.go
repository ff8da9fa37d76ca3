package domain

// Entity 是所有可以放入 slice 集合中的记录
type Entity interface {
	EntityID() string
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}
