package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/nexus-academic/dashboard/internal/domain"
)

var commonFirstNames = []string{
	"Juan", "María", "Carlos", "Ana", "Luis", "Laura", "Andrés", "Camila", "Jorge", "Valentina",
	"Felipe", "Daniela", "Santiago", "Sofía", "Diego", "Paula", "Mateo", "Isabella", "Sebastián", "Lucía",
}
var commonSurnames = []string{
	"García", "Rodríguez", "Martínez", "López", "González", "Pérez", "Sánchez", "Ramírez", "Torres", "Flores",
	"Rivera", "Gómez", "Díaz", "Morales", "Vargas", "Castro", "Rojas", "Ortiz", "Silva", "Herrera",
}

func GenerateRandomSpanishName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	return first + " " + surname
}

var accents = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ñ", "N")

var digits = "0123456789"

// 由姓名生成昵称：去掉重音，取名字的一部分再加几位数字
func GenerateNicknameFromName(name string) string {
	parts := strings.Fields(strings.ToLower(accents.Replace(name)))
	nickname := ""

	for _, part := range parts {
		length := rand.Intn(len(part)) + 1
		nickname += part[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		nickname += string(digits[rand.Intn(len(digits))])
	}

	return nickname
}

var genders = []string{"Male", "Female", "Other"}

func GenerateRandomStudent(emailDomainName string, courseIDs []string) *domain.StudentInput {
	name := GenerateRandomSpanishName()
	nickname := GenerateNicknameFromName(name)

	student := &domain.StudentInput{
		Name:     name,
		Age:      rand.Intn(13) + 17, // 17~29
		Email:    nickname + "@" + emailDomainName,
		Gender:   genders[rand.Intn(len(genders))],
		Nickname: nickname,
	}

	for _, courseID := range GenerateRandomSubset(courseIDs) {
		enrollment := domain.EnrollmentInput{
			CourseID:   courseID,
			EnrolledAt: time.Now().Add(-time.Hour * 24 * time.Duration(rand.Intn(90))),
		}
		// 一半的选课已经有成绩
		if rand.Intn(2) == 0 {
			score := GenerateRandomGrade()
			enrollment.Score = &score
		}
		student.Enrollments = append(student.Enrollments, enrollment)
	}

	return student
}

var courseSubjects = []string{
	"Programación", "Bases de Datos", "Redes", "Cálculo", "Álgebra Lineal",
	"Sistemas Operativos", "Ingeniería de Software", "Estadística", "Física", "Compiladores",
}

func GenerateRandomCourse(teacherID string) *domain.CourseInput {
	subject := courseSubjects[rand.Intn(len(courseSubjects))]
	course := &domain.CourseInput{
		Name:        subject + " " + GenerateRandomID(0, 2),
		Description: "Curso de " + strings.ToLower(subject) + " " + GenerateRandomID(10, 4),
		Code:        strings.ToUpper(GenerateRandomID(3, 0)) + GenerateRandomID(0, 3),
		TeacherID:   teacherID,
		Status:      domain.CourseActive,
	}

	if rand.Intn(4) == 0 {
		course.Status = domain.CourseInactive
	}

	course.StartDate = time.Now().Add(-time.Hour * 24 * time.Duration(rand.Intn(60)))
	course.EndDate = course.StartDate.Add(time.Hour * 24 * 30 * time.Duration(rand.Intn(4)+2))

	return course
}

// 成绩范围为 0.0~5.0，保留一位小数
func GenerateRandomGrade() float64 {
	return float64(rand.Intn(51)) / 10
}

func GenerateRandomComment(grade float64) string {
	switch {
	case grade >= 4.5:
		return "Excelente trabajo"
	case grade >= 3.5:
		return "Buen trabajo"
	case grade >= 3.0:
		return fmt.Sprintf("Aceptable, revisar la sección %d", rand.Intn(5)+1)
	default:
		return "Debe mejorar"
	}
}

var letters = []rune("abcdefghijklmnopqrstuvwxyz")

func GenerateRandomPassword(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = chars[rand.Intn(len(chars))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

// 使用 Fisher-Yates 洗牌算法来生成一个随机子集，可能为空
func GenerateRandomSubset(arr []string) []string {
	arrCopy := append([]string{}, arr...) // 复制数组，避免修改原数组

	for i := 0; i < len(arrCopy)-1; i++ {
		j := rand.Intn(len(arrCopy)-i) + i
		arrCopy[i], arrCopy[j] = arrCopy[j], arrCopy[i]
	}

	l := rand.Intn(len(arrCopy) + 1)
	return arrCopy[:l]
}
