package factories

import (
	"io"

	"github.com/AnotherFullstackDev/sellctl/internal/config"
	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"go.uber.org/zap"
)

type SharedServicesLocator struct {
	Config             *config.Config
	CredentialsStorage lib.CredentialsStorage
	Logger             *zap.Logger
	// Stdin and Prompt are used when the API key has to be typed in.
	Stdin  io.Reader
	Prompt io.Writer
}

func NewSharedServicesLocator(config *config.Config, credentialsStorage lib.CredentialsStorage, logger *zap.Logger, stdin io.Reader, prompt io.Writer) *SharedServicesLocator {
	return &SharedServicesLocator{
		config,
		credentialsStorage,
		logger,
		stdin,
		prompt,
	}
}
