package repository

import (
	"quiznight_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// defaultUsers 首次启动时的固定账号集合，密码在播种时哈希
var defaultUsers = map[string]string{
	"jas":    "harhar",
	"vinita": "toothless",
	"angle":  "gorilla",
	"diego":  "batman",
	"adan":   "girlypop",
	"roch":   "bad",
	"test":   "tester",
	"shmado": "hypothetically",
}

var defaultQuestions = []model.Question{
	{
		ID:       1,
		Question: "What year did we meet?",
		Options:  []string{"2019", "2020", "2021"},
		Answer:   "2020",
		Points:   10,
	},
	{
		ID:            2,
		Question:      "Upload a picture from our last trip",
		ImageRequired: true,
		Points:        15,
	},
}

// SeedUsers 生成带 bcrypt 哈希的初始用户文档
func SeedUsers(cost int) (model.Users, error) {
	users := make(model.Users, len(defaultUsers))
	for name, password := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, err
		}
		users[name] = model.User{Password: string(hash)}
	}
	return users, nil
}

func SeedQuestions() []model.Question {
	questions := make([]model.Question, len(defaultQuestions))
	copy(questions, defaultQuestions)
	return questions
}
