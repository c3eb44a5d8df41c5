package model

import "encoding/json"

// User 持久化的用户条目，密码为 bcrypt 哈希
type User struct {
	Password string `json:"password"`
}

// Question 题目，多选题带 answer，图片题带 image_required
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	Answer        string   `json:"answer,omitempty"`
	ImageRequired bool     `json:"image_required,omitempty"`
	Points        int      `json:"points"`
}

// PublicView 返回不含正确答案的题目视图
func (q Question) PublicView() QuestionView {
	return QuestionView{
		ID:            q.ID,
		Question:      q.Question,
		Options:       q.Options,
		ImageRequired: q.ImageRequired,
		Points:        q.Points,
	}
}

// QuestionView 对外暴露的题目结构，不包含 answer 字段
type QuestionView struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	ImageRequired bool     `json:"image_required,omitempty"`
	Points        int      `json:"points"`
}

// 五个持久化文档的内存镜像类型
type (
	Users     map[string]User
	Scores    map[string]int
	Answers   map[string][]int
	UploadLog map[string][]string
)

// LeaderboardEntry 序列化为 [username, score] 二元组，保持前端契约
type LeaderboardEntry struct {
	Username string
	Score    int
}

func (e LeaderboardEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.Username, e.Score})
}

func (e *LeaderboardEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &e.Username); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Score)
}
