package v1alpha1

// NewWorkspace creates a new Workspace with API metadata set and an empty spec.
func NewWorkspace() *Workspace {
	return &Workspace{
		TypeMeta: TypeMeta{
			APIVersion: APIVersion,
			Kind:       Kind,
		},
		Spec: Spec{},
	}
}

// NewPackagesStep creates a packages step.
func NewPackagesStep(name string, optional bool, packages ...string) Step {
	return Step{
		Name:     name,
		Optional: optional,
		Packages: packages,
	}
}

// NewDirectoriesStep creates a directory-tree step.
func NewDirectoriesStep(name string, directories ...string) Step {
	return Step{
		Name:        name,
		Directories: directories,
	}
}

// NewFileStep creates a file step.
func NewFileStep(name, path, content string, mode FileMode) Step {
	return Step{
		Name: name,
		File: &FileSpec{
			Path:    path,
			Content: content,
			Mode:    mode,
		},
	}
}
