package service

import (
	"strconv"
	"time"

	"github.com/Suneetha610/student/database"
	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/util/random"
)

// Runtime-tunable settings live in the settings table; anything missing
// falls back to these defaults. The signing secret is generated once per
// deployment and then persisted.
var defaultValueMap = map[string]string{
	"secret":            random.Seq(32),
	"sessionMaxAge":     "60",
	"webBasePath":       "/",
	"pageSize":          "50",
	"resetTimeoutHours": "72",
}

// SettingService reads and writes the key/value settings rows.
type SettingService struct{}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting, err := s.getSetting(key)
	db := database.GetDB()
	if database.IsNotFound(err) {
		return db.Create(&model.Setting{
			Key:   key,
			Value: value,
		}).Error
	} else if err != nil {
		return err
	}
	setting.Value = value
	return db.Save(setting).Error
}

func (s *SettingService) getString(key string) (string, error) {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		value, ok := defaultValueMap[key]
		if !ok {
			return "", err
		}
		// persist generated defaults (the secret must stay stable)
		if err := s.saveSetting(key, value); err != nil {
			return "", err
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) getInt(key string) (int, error) {
	str, err := s.getString(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(str)
}

// GetSecret returns the signing secret used for the session store and the
// reset token generator.
func (s *SettingService) GetSecret() (string, error) {
	return s.getString("secret")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func (s *SettingService) GetSessionMaxAge() (int, error) {
	return s.getInt("sessionMaxAge")
}

func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getString("webBasePath")
	if err != nil {
		return "", err
	}
	if basePath == "" {
		basePath = "/"
	}
	if basePath[len(basePath)-1] != '/' {
		basePath += "/"
	}
	return basePath, nil
}

func (s *SettingService) GetPageSize() (int, error) {
	return s.getInt("pageSize")
}

// GetResetTimeout returns how long an issued reset link stays valid.
func (s *SettingService) GetResetTimeout() (time.Duration, error) {
	hours, err := s.getInt("resetTimeoutHours")
	if err != nil {
		return 0, err
	}
	return time.Duration(hours) * time.Hour, nil
}

// ResetSettings drops every settings row back to the defaults.
func (s *SettingService) ResetSettings() error {
	db := database.GetDB()
	err := db.Where("1 = 1").Delete(model.Setting{}).Error
	if err != nil {
		return err
	}
	logger.Info("settings reset to defaults")
	return nil
}
