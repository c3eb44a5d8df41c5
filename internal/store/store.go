// Package store persists named JSON documents in a data directory.
//
// Persistence is best-effort: a document that fails to parse is reset to its
// seed value rather than surfaced as an error. Writes go to a temp file in
// the same directory and are renamed over the target, so a crash mid-save
// never leaves a half-written document behind.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"quiznight_backend/pkg/logger"

	"go.uber.org/zap"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// SeedFunc 返回文档的默认内容，只在需要播种时调用
type SeedFunc func() (interface{}, error)

// Static 包装固定的默认值
func Static(v interface{}) SeedFunc {
	return func() (interface{}, error) { return v, nil }
}

// Load 读取文档到 out；文件缺失时写入 seed，解析失败时用 seed 覆盖
func (s *Store) Load(name string, out interface{}, seed SeedFunc) error {
	path := s.path(name)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s.reset(name, out, seed)
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Log.Warn("Document failed to parse, resetting to seed",
			zap.String("document", name), zap.Error(err))
		return s.reset(name, out, seed)
	}

	return nil
}

func (s *Store) reset(name string, out interface{}, seed SeedFunc) error {
	v, err := seed()
	if err != nil {
		return err
	}
	if err := s.Save(name, v); err != nil {
		return err
	}
	// round-trip the seed so out sees exactly what was persisted
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Save 序列化后写临时文件，再原子重命名覆盖目标
func (s *Store) Save(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path(name))
}

// Ping 检查数据目录是否可访问，用于健康检查
func (s *Store) Ping() error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *Store) Dir() string {
	return s.dir
}
