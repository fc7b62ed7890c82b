package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	lambdaadapter "github.com/nexaur/nexaur-api/internal/adapters/lambda"
	"github.com/nexaur/nexaur-api/internal/bootstrap"
)

func main() {
	// Initialization happens once per execution environment. A failure is
	// kept and reported per request instead of crashing the runtime.
	app, err := bootstrap.NewApp(context.Background())

	var handler *lambdaadapter.Handler
	if err != nil {
		handler = lambdaadapter.NewHandler(nil, err)
	} else {
		handler = lambdaadapter.NewHandler(app.Server, nil)
	}

	lambda.Start(handler.Handle)
}
