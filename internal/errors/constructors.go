package errors

// Convenience constructors for common error patterns

// Config errors

func ConfigNotFound(path string) *BuildError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(reason string, cause error) *BuildError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("reason", reason)
}

// Content errors

func DateInvalid(file, value string, cause error) *BuildError {
	return Wrap(cause, CategoryContent, SeverityFatal, "unparseable publish date").
		WithContext("file", file).
		WithContext("value", value)
}

func SlugCollision(slug, file, other string) *BuildError {
	return New(CategoryContent, SeverityFatal, "duplicate document identifier").
		WithContext("slug", slug).
		WithContext("file", file).
		WithContext("conflicts_with", other)
}

func ContentDirMissing(dir string, cause error) *BuildError {
	return Wrap(cause, CategoryContent, SeverityFatal, "content directory not readable").
		WithContext("dir", dir)
}

// Rendering and output errors

func TemplateMissing(name string, cause error) *BuildError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template not found").
		WithContext("template", name)
}

func RenderFailed(template, page string, cause error) *BuildError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page rendering failed").
		WithContext("template", template).
		WithContext("page", page)
}

func WriteFailed(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}
