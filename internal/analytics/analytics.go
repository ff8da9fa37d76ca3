// Package analytics 根据学生、课程和作业提交集合计算仪表盘指标
package analytics

import (
	"math"

	"github.com/nexus-academic/dashboard/internal/domain"
)

type BucketName string

const (
	BucketExcellent BucketName = "Excelente"
	BucketGood      BucketName = "Bueno"
	BucketRegular   BucketName = "Regular"
	BucketPoor      BucketName = "Deficiente"
)

// Bucket 是一个固定的分数区间 [Min, Max)，最高的区间没有上界
type Bucket struct {
	Name       BucketName `json:"name"`
	Label      string     `json:"label"`
	Min        float64    `json:"-"`
	Count      int        `json:"count"`
	Percentage float64    `json:"percentage"`
}

// 从高到低排列，边界值归入更高的区间
var bucketDefs = []Bucket{
	{Name: BucketExcellent, Label: "Excelente (4.5-5.0)", Min: 4.5},
	{Name: BucketGood, Label: "Bueno (3.5-4.4)", Min: 3.5},
	{Name: BucketRegular, Label: "Regular (3.0-3.4)", Min: 3.0},
	{Name: BucketPoor, Label: "Deficiente (<3.0)", Min: math.Inf(-1)},
}

type CourseSummary struct {
	CourseID        string   `json:"courseId"`
	Name            string   `json:"name"`
	Code            string   `json:"code"`
	Status          string   `json:"status"`
	SubmissionCount int      `json:"submissionCount"`
	AverageGrade    *float64 `json:"averageGrade"` // nil 表示该课程没有已评分的提交
}

type Metrics struct {
	TotalStudents      int             `json:"totalStudents"`
	ActiveStudents     int             `json:"activeStudents"`
	TotalCourses       int             `json:"totalCourses"`
	ActiveCourses      int             `json:"activeCourses"`
	TotalSubmissions   int             `json:"totalSubmissions"`
	GradedSubmissions  int             `json:"gradedSubmissions"`
	PendingSubmissions int             `json:"pendingSubmissions"`
	AverageGrade       *float64        `json:"averageGrade"` // nil 表示没有已评分的提交
	GradeDistribution  []Bucket        `json:"gradeDistribution"`
	Courses            []CourseSummary `json:"courses"`
}

func bucketIndex(grade float64) int {
	for i, b := range bucketDefs {
		if grade >= b.Min {
			return i
		}
	}
	return len(bucketDefs) - 1
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) * 100 / float64(total))
}

// Aggregate 计算仪表盘指标，不修改任何输入
func Aggregate(students []domain.Student, courses []domain.Course, submissions []domain.Submission) Metrics {
	m := Metrics{
		TotalStudents:     len(students),
		TotalCourses:      len(courses),
		TotalSubmissions:  len(submissions),
		GradeDistribution: make([]Bucket, len(bucketDefs)),
		Courses:           make([]CourseSummary, 0, len(courses)),
	}
	copy(m.GradeDistribution, bucketDefs)

	for _, s := range students {
		if s.IsActive() {
			m.ActiveStudents++
		}
	}

	for _, c := range courses {
		if c.Status == domain.CourseActive {
			m.ActiveCourses++
		}
	}

	type courseAcc struct {
		count  int
		graded int
		sum    float64
	}
	perCourse := make(map[string]*courseAcc, len(courses))

	sum := 0.0
	for _, s := range submissions {
		acc, ok := perCourse[s.Course.ID]
		if !ok {
			acc = &courseAcc{}
			perCourse[s.Course.ID] = acc
		}
		acc.count++

		if s.Grade == nil {
			continue
		}
		grade := *s.Grade
		m.GradedSubmissions++
		sum += grade
		m.GradeDistribution[bucketIndex(grade)].Count++
		acc.graded++
		acc.sum += grade
	}
	m.PendingSubmissions = m.TotalSubmissions - m.GradedSubmissions

	if m.GradedSubmissions > 0 {
		avg := round1(sum / float64(m.GradedSubmissions))
		m.AverageGrade = &avg
	}

	for i := range m.GradeDistribution {
		m.GradeDistribution[i].Percentage = percentage(m.GradeDistribution[i].Count, m.GradedSubmissions)
	}

	for _, c := range courses {
		summary := CourseSummary{
			CourseID: c.ID,
			Name:     c.Name,
			Code:     c.Code,
			Status:   string(c.Status),
		}
		if acc, ok := perCourse[c.ID]; ok {
			summary.SubmissionCount = acc.count
			if acc.graded > 0 {
				avg := round1(acc.sum / float64(acc.graded))
				summary.AverageGrade = &avg
			}
		}
		m.Courses = append(m.Courses, summary)
	}

	return m
}

// bucket 按名称查找分布中的区间
func (m Metrics) bucket(name BucketName) (Bucket, bool) {
	for _, b := range m.GradeDistribution {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}
