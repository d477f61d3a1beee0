package directory

import (
	"context"
	"time"

	"github.com/jcooky/go-din"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mentessaas/a2a-protocol/entity"
	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/internal/db"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
	"github.com/mentessaas/a2a-protocol/internal/stringslices"
)

type (
	Service interface {
		Register(ctx context.Context, params *a2a.RegisterParams) (*entity.Agent, error)
		Discover(ctx context.Context, capabilities []string) ([]entity.Agent, error)
		GetAgent(ctx context.Context, agentId string) (*entity.Agent, error)
		ListAgents(ctx context.Context) ([]entity.Agent, error)
		Deregister(ctx context.Context, agentId string) error
		Heartbeat(ctx context.Context, agentId string) error
	}

	service struct {
		logger *mylog.Logger
		db     *gorm.DB

		checkLiveInterval time.Duration
		staleAfter        time.Duration
	}
)

var (
	_ Service = (*service)(nil)
)

func (s *service) Register(ctx context.Context, params *a2a.RegisterParams) (*entity.Agent, error) {
	if params == nil || params.AgentId == "" || params.Endpoint == "" {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "agentId and endpoint are required")
	}

	_, tx := db.OpenSession(ctx, s.db)

	var agent entity.Agent
	if err := tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Find(&agent, "agent_id = ?", params.AgentId).Error; err != nil {
			return errors.Wrapf(err, "failed to find agent")
		}

		// Re-registration replaces the card but keeps the original
		// RegisteredAt stamp.
		now := time.Now().UTC()
		if agent.ID == 0 {
			agent.AgentId = params.AgentId
			agent.RegisteredAt = now
		}
		agent.Name = params.Name
		agent.Capabilities = datatypes.NewJSONSlice(params.Capabilities)
		agent.Endpoint = params.Endpoint
		agent.LastLiveAt = now

		return agent.Save(tx)
	}); err != nil {
		return nil, err
	}

	s.logger.Info("agent registered", "agent_id", agent.AgentId, "endpoint", agent.Endpoint)

	return &agent, nil
}

func (s *service) Discover(ctx context.Context, capabilities []string) ([]entity.Agent, error) {
	if len(capabilities) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "capabilities are required")
	}

	agents, err := s.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	var matched []entity.Agent
	for _, agent := range agents {
		if len(stringslices.Intersect(agent.Capabilities, capabilities)) == 0 {
			continue
		}
		matched = append(matched, agent)
	}

	return matched, nil
}

func (s *service) GetAgent(ctx context.Context, agentId string) (*entity.Agent, error) {
	_, tx := db.OpenSession(ctx, s.db)

	var agent entity.Agent
	if err := tx.First(&agent, "agent_id = ?", agentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(errors.ErrNotFound, "agent %q is not registered", agentId)
		}
		return nil, errors.Wrapf(err, "failed to find agent")
	}

	return &agent, nil
}

func (s *service) ListAgents(ctx context.Context) ([]entity.Agent, error) {
	_, tx := db.OpenSession(ctx, s.db)

	var agents []entity.Agent
	if err := tx.Order("id").Find(&agents).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find agents")
	}

	return agents, nil
}

func (s *service) Deregister(ctx context.Context, agentId string) error {
	if agentId == "" {
		return errors.Wrapf(errors.ErrInvalidParams, "agentId is required")
	}

	_, tx := db.OpenSession(ctx, s.db)
	if err := tx.Transaction(func(tx *gorm.DB) error {
		var agent entity.Agent
		if err := tx.First(&agent, "agent_id = ?", agentId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(errors.ErrNotFound, "agent %q is not registered", agentId)
			}
			return errors.Wrapf(err, "failed to find agent")
		}

		return agent.Delete(tx)
	}); err != nil {
		return err
	}

	s.logger.Info("agent deregistered", "agent_id", agentId)

	return nil
}

func (s *service) Heartbeat(ctx context.Context, agentId string) error {
	if agentId == "" {
		return errors.Wrapf(errors.ErrInvalidParams, "agentId is required")
	}

	_, tx := db.OpenSession(ctx, s.db)

	var agent entity.Agent
	if err := tx.First(&agent, "agent_id = ?", agentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(errors.ErrNotFound, "agent %q is not registered", agentId)
		}
		return errors.Wrapf(err, "failed to find agent")
	}

	agent.LastLiveAt = time.Now().UTC()

	return agent.Save(tx)
}

func init() {
	din.RegisterT(func(c *din.Container) (Service, error) {
		cfg, err := din.GetT[*config.DirectoryConfig](c)
		if err != nil {
			return nil, err
		}

		svc := &service{
			logger:            din.MustGet[*mylog.Logger](c, mylog.Key),
			db:                din.MustGet[*gorm.DB](c, db.Key),
			checkLiveInterval: cfg.CheckLiveIntervalDur(),
			staleAfter:        cfg.StaleAfterDur(),
		}

		go svc.runHealthChecker(c)

		return svc, nil
	})
}
