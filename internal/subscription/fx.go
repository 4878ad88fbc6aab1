package subscription

import (
	"github.com/loanflowlabs/loanflow/internal/subscription/repository"
	"github.com/loanflowlabs/loanflow/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
