package types

// Version is set during build via -ldflags "-X github.com/m-mizutani/tubectl/pkg/domain/types.Version=X.Y.Z"
var Version = "dev"

// ServiceName is reported by the health endpoint and used as the CLI name
const ServiceName = "tubectl"
