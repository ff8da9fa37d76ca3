package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/utils"
)

// ValidationError 是表单校验失败，只在界面上展示，不会进入共享状态
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// 使用 json 标签作为字段名，错误信息中显示的是前端熟悉的名字
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

// Struct 校验任意带 validate 标签的结构体，只返回第一个错误
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	return &ValidationError{
		Field:   first.Field(),
		Message: first.Translate(v.translator),
	}
}

func (v *Validator) Credentials(in domain.Credentials) error {
	return v.Struct(in)
}

func (v *Validator) Registration(in domain.Registration) error {
	return v.Struct(in)
}

func (v *Validator) Student(in domain.StudentInput) error {
	if err := v.Struct(in); err != nil {
		return err
	}
	if err := utils.ValidateEnrollments(&in); err != nil {
		return &ValidationError{Field: "enrollments", Message: err.Error()}
	}
	return nil
}

func (v *Validator) Course(in domain.CourseInput) error {
	if err := v.Struct(in); err != nil {
		return err
	}
	if err := utils.ValidateCoursePeriod(&in); err != nil {
		return &ValidationError{Field: "endDate", Message: err.Error()}
	}
	return nil
}

func (v *Validator) Grade(in domain.GradeInput) error {
	return v.Struct(in)
}
