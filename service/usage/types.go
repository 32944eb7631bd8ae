package usage

import (
	"github.com/elC0mpa/aws-logclass-doctor/service"
	"github.com/rs/zerolog"
)

type usageService struct {
	events  service.EventCounter
	filters service.FilterService
	metrics service.IngestionService
	logger  zerolog.Logger
}
