// Package filter 为列表页面生成过滤后的视图
package filter

import (
	"strings"

	"github.com/nexus-academic/dashboard/internal/domain"
)

// StatusAll 表示不按状态过滤
const StatusAll = "ALL"

type Criteria struct {
	SearchTerm string `json:"searchTerm"`
	Status     string `json:"statusFilter"`
}

// Spec 描述某种实体参与搜索的文本字段以及它的状态
type Spec[T any] struct {
	Fields func(T) []string
	// Status 为 nil 时忽略 Criteria.Status
	Status func(T) string
}

// Apply 返回一个新的切片，保持原有的相对顺序
func Apply[T any](items []T, spec Spec[T], c Criteria) []T {
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))
	status := strings.TrimSpace(c.Status)
	byStatus := spec.Status != nil && status != "" && !strings.EqualFold(status, StatusAll)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if byStatus && !strings.EqualFold(spec.Status(item), status) {
			continue
		}
		if term != "" && !matches(spec.Fields(item), term) {
			continue
		}
		out = append(out, item)
	}

	return out
}

func matches(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

var Students = Spec[domain.Student]{
	Fields: func(s domain.Student) []string {
		return []string{s.Name, s.Email, s.Nickname}
	},
}

var Courses = Spec[domain.Course]{
	Fields: func(c domain.Course) []string {
		return []string{c.Name, c.Code, c.Description, c.Teacher.FullName}
	},
	Status: func(c domain.Course) string {
		return string(c.Status)
	},
}

var Submissions = Spec[domain.Submission]{
	Fields: func(s domain.Submission) []string {
		return []string{s.Student.Name, s.Course.Name, s.Course.Code, s.Comments}
	},
	Status: func(s domain.Submission) string {
		return string(s.Status())
	},
}

// Users 支持按角色过滤，用户拥有任意一个匹配的角色即可
var Users = Spec[domain.User]{
	Fields: func(u domain.User) []string {
		return []string{u.FullName, u.Email}
	},
}

// ByRole 返回拥有 role 的用户，role 为空或 ALL 时返回全部
func ByRole(users []domain.User, role string) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if role == "" || strings.EqualFold(role, StatusAll) || u.HasAnyRole([]domain.Role{domain.Role(role)}) {
			out = append(out, u)
		}
	}
	return out
}
