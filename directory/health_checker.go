package directory

import (
	"context"
	"time"

	"github.com/mentessaas/a2a-protocol/entity"
)

func (s *service) runHealthChecker(ctx context.Context) {
	s.logger.Info("start health checker")
	defer s.logger.Info("stop health checker")

	ticker := time.NewTicker(s.checkLiveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var agents []entity.Agent
			if err := s.db.Find(&agents).Error; err != nil {
				s.logger.Error("Failed to find agents", "err", err)
				continue
			}

			for _, agent := range agents {
				if time.Since(agent.LastLiveAt) <= s.staleAfter {
					continue
				}

				s.logger.Warn("Agent is not alive", "agent_id", agent.AgentId, "last_live_at", agent.LastLiveAt)
				if err := agent.Delete(s.db); err != nil {
					s.logger.Error("Failed to delete agent", "agent_id", agent.AgentId, "err", err)
				} else {
					s.logger.Info("Deleted agent", "agent_id", agent.AgentId)
				}
			}
		}
	}
}
