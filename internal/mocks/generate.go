package mocks

//go:generate mockery --name Repository --srcpkg github.com/mucritic/mucritic/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Gateway --srcpkg github.com/mucritic/mucritic/internal/cache --output ./cache --outpkg cachemocks --with-expecter
