package orchestrator

import (
	"io"
	"time"

	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/elC0mpa/aws-logclass-doctor/service"
	"github.com/rs/zerolog"
)

type orchestratorService struct {
	identityService  service.IdentityService
	costService      service.CostService
	inventoryService service.InventoryService
	usageCollector   service.UsageCollector
	costProjector    service.CostProjector
	logger           zerolog.Logger
	out              io.Writer
	now              func() time.Time
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
