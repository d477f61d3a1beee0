package entity

import (
	"time"

	"github.com/mentessaas/a2a-protocol/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Agent struct {
	gorm.Model

	AgentId      string `gorm:"index:idx_agent_agent_id_uniq,unique,where:deleted_at IS NULL"`
	Name         string
	Capabilities datatypes.JSONSlice[string]
	Endpoint     string
	RegisteredAt time.Time
	LastLiveAt   time.Time
}

func (a *Agent) Save(db *gorm.DB) error {
	return errors.Wrapf(db.Save(a).Error, "failed to save agent")
}

func (a *Agent) Delete(db *gorm.DB) error {
	return errors.Wrapf(db.Delete(a).Error, "failed to delete agent")
}
