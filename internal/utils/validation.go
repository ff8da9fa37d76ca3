package utils

import (
	"errors"
	"fmt"

	"github.com/nexus-academic/dashboard/internal/domain"
)

func ValidateCoursePeriod(in *domain.CourseInput) error {
	// 结束日期必须严格晚于开始日期，同一天也不行
	if !in.EndDate.After(in.StartDate) {
		return errors.New("La fecha de fin debe ser posterior a la fecha de inicio")
	}
	return nil
}

func ValidateEnrollments(in *domain.StudentInput) error {
	// 检查同一个课程是否被重复选择
	seen := make(map[string]bool)
	for i, enrollment := range in.Enrollments {
		if seen[enrollment.CourseID] {
			return fmt.Errorf("La inscripción %d repite un curso", i+1)
		}
		seen[enrollment.CourseID] = true

		if enrollment.Score != nil && *enrollment.Score > 5 {
			return fmt.Errorf("La nota de la inscripción %d no puede ser mayor a 5", i+1)
		}
	}
	return nil
}
