package app

import "github.com/runoshun/shellbridge/internal/usecase"

func usecaseInput(command string) usecase.ExecuteCommandInput {
	return usecase.ExecuteCommandInput{Command: command}
}
