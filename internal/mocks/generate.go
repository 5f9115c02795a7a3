package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/fixture --output domain/fixture --outpkg fixturemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name OutrightRepository --dir ../domain/odds --output domain/odds --outpkg oddsmock --filename outright_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CorrectScoreRepository --dir ../domain/odds --output domain/odds --outpkg oddsmock --filename correct_score_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/playerstats --output domain/playerstats --outpkg playerstatsmock --filename repository_mock.go
