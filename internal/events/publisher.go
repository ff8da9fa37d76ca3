package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/store"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel 是 *amqp.Channel 中发布消息所需的部分
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher 把 store 派发的 action 异步发布到队列
//
// 队列满时丢弃记录，发布永远不会阻塞派发。
type Publisher struct {
	ch      Channel
	queue   string
	timeout time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	logs   chan domain.ActionLog
	wg     sync.WaitGroup
}

func NewPublisher(ch Channel, queue string, timeout time.Duration, buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		ch:      ch,
		queue:   queue,
		timeout: timeout,
		now:     time.Now,
		logs:    make(chan domain.ActionLog, buffer),
	}
}

// DeclareQueue 声明一个持久化的队列
func DeclareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // 持久化
		false, // 没有消费者时不自动删除
		false,
		false,
		nil,
	)
	return err
}

func (p *Publisher) Listener() store.Listener {
	return func(d store.Dispatched) {
		log := domain.ActionLog{
			ID:    uuid.NewString(),
			Slice: string(d.Slice),
			Type:  d.Action,
			Seq:   d.Seq,
			At:    p.now(),
		}
		p.mu.RLock()
		defer p.mu.RUnlock()
		if p.closed {
			return
		}

		select {
		case p.logs <- log:
		default:
			slog.Warn("action 日志队列已满，丢弃记录", "slice", log.Slice, "type", log.Type)
		}
	}
}

// Start 启动后台发布 goroutine，调用 Close 后退出
func (p *Publisher) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for log := range p.logs {
			if err := p.Publish(context.Background(), log); err != nil {
				slog.Warn("无法发布 action 日志", "slice", log.Slice, "type", log.Type, "error", err)
			}
		}
	}()
}

// Close 停止接收新的记录，并等待缓冲区中的记录发布完成
func (p *Publisher) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.logs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Publisher) Publish(ctx context.Context, log domain.ActionLog) error {
	body, err := json.Marshal(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.ch.PublishWithContext(
		ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   log.ID,
			Timestamp:   log.At,
			Body:        body,
		},
	)
}

// Decode 解析队列中的一条 action 记录
func Decode(body []byte) (domain.ActionLog, error) {
	var log domain.ActionLog
	err := json.Unmarshal(body, &log)
	return log, err
}
