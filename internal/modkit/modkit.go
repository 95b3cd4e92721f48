package modkit

import "github.com/FFlyyy/bot/internal/modkit/module"

// Module is what the API and the bot compose: routes plus a port set
type Module = module.Module
