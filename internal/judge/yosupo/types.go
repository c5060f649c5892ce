package yosupo

// categories.toml layout from the library-checker-problems repository.

type rawCategory struct {
	Name     string   `toml:"name"`
	Problems []string `toml:"problems"`
}

type rawCategories struct {
	Categories []rawCategory `toml:"categories"`
}
