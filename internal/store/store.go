package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nexus-academic/dashboard/internal/domain"
)

type Slice string

const (
	SliceAuth        Slice = "auth"
	SliceStudents    Slice = "students"
	SliceCourses     Slice = "courses"
	SliceSubmissions Slice = "submissions"
)

// State 是某一时刻整个应用状态的快照，其中的切片都是只读的
type State struct {
	Auth        *AuthState                     `json:"auth"`
	Students    *SliceState[domain.Student]    `json:"students"`
	Courses     *SliceState[domain.Course]     `json:"courses"`
	Submissions *SliceState[domain.Submission] `json:"submissions"`
}

// Fetch 区分同一切片上的读取请求，只有同种读取之间才会互相覆盖
type Fetch string

const (
	FetchItems   Fetch = "items"
	FetchCurrent Fetch = "current"
)

// Ticket 标识一次读取请求，用于丢弃被更新的同种读取取代的响应
type Ticket struct {
	Slice Slice
	Fetch Fetch
	Seq   uint64
}

type fence struct {
	slice Slice
	fetch Fetch
}

// Dispatched 在每次 action 被 reducer 处理后通知给订阅者
//
// Seq 是所属读取请求的序号，不受防护的 action 为 0。
type Dispatched struct {
	Slice  Slice
	Action string
	Seq    uint64
}

type Listener func(Dispatched)

// TokenStore 是持久化 token 的外部键值存储
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

type Store struct {
	mu    sync.Mutex
	state State
	seqs  map[fence]uint64

	authReducer       *AuthReducer
	studentReducer    *SliceReducer[domain.Student]
	courseReducer     *SliceReducer[domain.Course]
	submissionReducer *SliceReducer[domain.Submission]

	tokens TokenStore

	listenerMu sync.Mutex
	listeners  map[int]Listener
	nextID     int
}

type Option func(*Store)

// WithTokenStore 设置 token 存储，不设置时 token 副作用不执行任何操作
func WithTokenStore(ts TokenStore) Option {
	return func(s *Store) {
		s.tokens = ts
	}
}

func WithDefaultRoles(roles []domain.Role) Option {
	return func(s *Store) {
		s.authReducer = NewAuthReducer(roles)
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		seqs:              make(map[fence]uint64),
		authReducer:       NewAuthReducer([]domain.Role{domain.RoleTeacher}),
		studentReducer:    NewSliceReducer(InitialStudents),
		courseReducer:     NewSliceReducer(InitialCourses),
		submissionReducer: NewSliceReducer(InitialSubmissions),
		listeners:         make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = State{
		Auth:        InitialAuth(),
		Students:    s.studentReducer.Initial(),
		Courses:     s.courseReducer.Initial(),
		Submissions: s.submissionReducer.Initial(),
	}

	return s
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Auth() *AuthState {
	return s.State().Auth
}

func (s *Store) Students() *SliceState[domain.Student] {
	return s.State().Students
}

func (s *Store) Courses() *SliceState[domain.Course] {
	return s.State().Courses
}

func (s *Store) Submissions() *SliceState[domain.Submission] {
	return s.State().Submissions
}

// Subscribe 注册一个订阅者，返回取消订阅的函数
func (s *Store) Subscribe(l Listener) func() {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify(d Dispatched) {
	s.listenerMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenerMu.Unlock()

	for _, l := range listeners {
		l(d)
	}
}

// Begin 为 slice 上的集合读取分配新的序号并派发开始 action
//
// auth 切片的登录、注册和状态确认也使用它。之后用旧 ticket 提交的结果都会被丢弃。
func (s *Store) Begin(ctx context.Context, slice Slice) Ticket {
	return s.begin(ctx, slice, FetchItems)
}

// BeginCurrent 与 Begin 相同，但只和同一切片上读取单个实体的请求互相覆盖
func (s *Store) BeginCurrent(ctx context.Context, slice Slice) Ticket {
	return s.begin(ctx, slice, FetchCurrent)
}

// Start 只派发开始 action，不分配 ticket
//
// 创建、更新和删除的结果不会过期，用 Dispatch 系列方法提交。
func (s *Store) Start(ctx context.Context, slice Slice) {
	s.start(ctx, slice, nil)
}

func (s *Store) begin(ctx context.Context, slice Slice, fetch Fetch) Ticket {
	f := fence{slice: slice, fetch: fetch}

	s.mu.Lock()
	s.seqs[f]++
	t := Ticket{Slice: slice, Fetch: fetch, Seq: s.seqs[f]}
	s.mu.Unlock()

	s.start(ctx, slice, &t)
	return t
}

func (s *Store) start(ctx context.Context, slice Slice, t *Ticket) {
	switch slice {
	case SliceAuth:
		s.commitAuth(ctx, t, SetLoading{Loading: true})
	case SliceStudents:
		commitSlice(s, SliceStudents, t, s.studentReducer, &s.state.Students, StartFetching[domain.Student]{})
	case SliceCourses:
		commitSlice(s, SliceCourses, t, s.courseReducer, &s.state.Courses, StartFetching[domain.Course]{})
	case SliceSubmissions:
		commitSlice(s, SliceSubmissions, t, s.submissionReducer, &s.state.Submissions, StartFetching[domain.Submission]{})
	}
}

func (s *Store) isCurrent(t *Ticket) bool {
	return t == nil || s.seqs[fence{slice: t.Slice, fetch: t.Fetch}] == t.Seq
}

func seqOf(t *Ticket) uint64 {
	if t == nil {
		return 0
	}
	return t.Seq
}

func (s *Store) DispatchAuth(ctx context.Context, action AuthAction) {
	s.commitAuth(ctx, nil, action)
}

// CommitAuth 仅当 t 仍是 auth 切片上最新的请求时才派发 action
func (s *Store) CommitAuth(ctx context.Context, t Ticket, action AuthAction) bool {
	return s.commitAuth(ctx, &t, action)
}

func (s *Store) commitAuth(ctx context.Context, t *Ticket, action AuthAction) bool {
	s.mu.Lock()
	if !s.isCurrent(t) {
		s.mu.Unlock()
		slog.Debug("丢弃过期的响应", "slice", SliceAuth, "action", action.ActionType())
		return false
	}
	next, effects := s.authReducer.Reduce(s.state.Auth, action)
	s.state.Auth = next
	// effect 在持有锁时执行，保证 token 写入顺序与状态变更顺序一致
	s.runEffects(ctx, effects)
	s.mu.Unlock()

	s.notify(Dispatched{Slice: SliceAuth, Action: action.ActionType(), Seq: seqOf(t)})
	return true
}

func (s *Store) runEffects(ctx context.Context, effects []Effect) {
	if s.tokens == nil {
		return
	}

	for _, e := range effects {
		var err error
		switch e := e.(type) {
		case PersistToken:
			err = s.tokens.Set(ctx, e.Token)
		case RemoveToken:
			err = s.tokens.Remove(ctx)
		}
		if err != nil {
			slog.Warn("无法执行 token 副作用", "error", err)
		}
	}
}

func (s *Store) DispatchStudents(action SliceAction[domain.Student]) {
	commitSlice(s, SliceStudents, nil, s.studentReducer, &s.state.Students, action)
}

func (s *Store) CommitStudents(t Ticket, action SliceAction[domain.Student]) bool {
	return commitSlice(s, SliceStudents, &t, s.studentReducer, &s.state.Students, action)
}

func (s *Store) DispatchCourses(action SliceAction[domain.Course]) {
	commitSlice(s, SliceCourses, nil, s.courseReducer, &s.state.Courses, action)
}

func (s *Store) CommitCourses(t Ticket, action SliceAction[domain.Course]) bool {
	return commitSlice(s, SliceCourses, &t, s.courseReducer, &s.state.Courses, action)
}

func (s *Store) DispatchSubmissions(action SliceAction[domain.Submission]) {
	commitSlice(s, SliceSubmissions, nil, s.submissionReducer, &s.state.Submissions, action)
}

func (s *Store) CommitSubmissions(t Ticket, action SliceAction[domain.Submission]) bool {
	return commitSlice(s, SliceSubmissions, &t, s.submissionReducer, &s.state.Submissions, action)
}

// ResetData 把三个数据切片恢复为初始状态，auth 切片不受影响
func (s *Store) ResetData() {
	s.DispatchStudents(Reset[domain.Student]{})
	s.DispatchCourses(Reset[domain.Course]{})
	s.DispatchSubmissions(Reset[domain.Submission]{})
}

func commitSlice[T domain.Entity](s *Store, slice Slice, t *Ticket, r *SliceReducer[T], field **SliceState[T], action SliceAction[T]) bool {
	s.mu.Lock()
	if !s.isCurrent(t) {
		s.mu.Unlock()
		slog.Debug("丢弃过期的响应", "slice", slice, "action", action.ActionType())
		return false
	}
	*field = r.Reduce(*field, action)
	s.mu.Unlock()

	s.notify(Dispatched{Slice: slice, Action: action.ActionType(), Seq: seqOf(t)})
	return true
}
