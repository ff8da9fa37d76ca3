package store

import (
	"slices"

	"github.com/nexus-academic/dashboard/internal/domain"
)

// AuthState 满足 IsAuthenticated ⇔ User != nil && Token != ""
type AuthState struct {
	User            *domain.User `json:"user"`
	Token           string       `json:"-"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsInitialized   bool         `json:"isInitialized"`
	Loading         bool         `json:"loading"`
	Error           string       `json:"error,omitempty"`
}

func (s *AuthState) clone() *AuthState {
	next := *s
	return &next
}

func InitialAuth() *AuthState {
	return &AuthState{}
}

type AuthAction interface {
	ActionType() string
	authAction()
}

type SetLoading struct {
	Loading bool
}

type SetCredentials struct {
	User  domain.User
	Token string
}

type ClearCredentials struct{}

type SetAuthError struct {
	Message string
}

type ClearAuthError struct{}

type SetInitialized struct {
	Initialized bool
}

// InitializeAuth 携带从 token 存储中读出的 token，读取本身由调用方完成
type InitializeAuth struct {
	StoredToken string
}

func (SetLoading) authAction()       {}
func (SetCredentials) authAction()   {}
func (ClearCredentials) authAction() {}
func (SetAuthError) authAction()     {}
func (ClearAuthError) authAction()   {}
func (SetInitialized) authAction()   {}
func (InitializeAuth) authAction()   {}

func (SetLoading) ActionType() string       { return "setLoading" }
func (SetCredentials) ActionType() string   { return "setCredentials" }
func (ClearCredentials) ActionType() string { return "clearCredentials" }
func (SetAuthError) ActionType() string     { return "setError" }
func (ClearAuthError) ActionType() string   { return "clearError" }
func (SetInitialized) ActionType() string   { return "setInitialized" }
func (InitializeAuth) ActionType() string   { return "initializeAuth" }

// Effect 描述 reducer 希望执行的副作用，由 Store 交给 token 存储执行
type Effect interface {
	effect()
}

type PersistToken struct {
	Token string
}

type RemoveToken struct{}

func (PersistToken) effect() {}
func (RemoveToken) effect()  {}

type AuthReducer struct {
	// 登录或状态检查的响应中没有角色时使用
	DefaultRoles []domain.Role
}

func NewAuthReducer(defaultRoles []domain.Role) *AuthReducer {
	return &AuthReducer{DefaultRoles: slices.Clone(defaultRoles)}
}

func (r *AuthReducer) Reduce(state *AuthState, action AuthAction) (*AuthState, []Effect) {
	if state == nil {
		state = InitialAuth()
	}

	switch a := action.(type) {
	case SetLoading:
		next := state.clone()
		next.Loading = a.Loading
		if a.Loading {
			next.Error = ""
		}
		return next, nil

	case SetCredentials:
		// 缺少用户或 token 的凭证无法满足认证不变量，忽略
		if a.Token == "" || a.User.ID == "" {
			return state, nil
		}
		user := a.User
		if len(user.Roles) == 0 {
			user.Roles = slices.Clone(r.DefaultRoles)
		} else {
			user.Roles = slices.Clone(user.Roles)
		}
		next := state.clone()
		next.User = &user
		next.Token = a.Token
		next.IsAuthenticated = true
		next.IsInitialized = true
		next.Loading = false
		next.Error = ""
		return next, []Effect{PersistToken{Token: a.Token}}

	case ClearCredentials:
		next := state.clone()
		next.User = nil
		next.Token = ""
		next.IsAuthenticated = false
		next.IsInitialized = true
		next.Loading = false
		next.Error = ""
		return next, []Effect{RemoveToken{}}

	case SetAuthError:
		// 认证失败会结束当前会话，user 和 token 一起清空以保持认证不变量
		next := state.clone()
		next.User = nil
		next.Token = ""
		next.IsAuthenticated = false
		next.IsInitialized = true
		next.Loading = false
		next.Error = a.Message
		if state.Token == "" {
			return next, nil
		}
		return next, []Effect{RemoveToken{}}

	case ClearAuthError:
		if state.Error == "" {
			return state, nil
		}
		next := state.clone()
		next.Error = ""
		return next, nil

	case SetInitialized:
		next := state.clone()
		next.IsInitialized = a.Initialized
		return next, nil

	case InitializeAuth:
		next := state.clone()
		next.IsInitialized = true
		next.Token = a.StoredToken
		return next, nil

	default:
		return state, nil
	}
}
