package ledger

import (
	"github.com/loanflowlabs/loanflow/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(service.NewCodeGenerator),
	fx.Provide(service.NewService),
)
