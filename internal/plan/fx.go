package plan

import (
	"github.com/loanflowlabs/loanflow/internal/plan/repository"
	"github.com/loanflowlabs/loanflow/internal/plan/service"
	"go.uber.org/fx"
)

var Module = fx.Module("plan.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
