package domain

import "time"

// ActionLog 是发布到消息队列中的一条 action 记录，不包含 action 的负载
type ActionLog struct {
	ID    string    `json:"id"`
	Slice string    `json:"slice"`
	Type  string    `json:"type"`
	Seq   uint64    `json:"seq"`
	At    time.Time `json:"at"`
}
