package registry

import "github.com/m-mizutani/docswatch/pkg/domain/model"

var defaultRepositories = []model.RepoConfig{
	{
		Owner:       "MicrosoftDocs",
		Name:        "azure-docs",
		DisplayName: "Azure Docs",
		Folder:      "/articles/",
		Icon:        "azure.svg",
	},
	{
		Owner:       "MicrosoftDocs",
		Name:        "azure-devops-docs",
		DisplayName: "Azure DevOps Docs",
		Folder:      "/docs/",
		Icon:        "azure-devops.svg",
	},
	{
		Owner:       "MicrosoftDocs",
		Name:        "sql-docs",
		DisplayName: "SQL Docs",
		Folder:      "/docs/",
		Icon:        "sql.svg",
	},
	{
		Owner:       "MicrosoftDocs",
		Name:        "azure-docs-cli",
		DisplayName: "Azure CLI Docs",
		Folder:      "/docs-ref-conceptual/",
		Icon:        "azure.svg",
	},
	{
		Owner:       "hashicorp",
		Name:        "terraform-provider-azurerm",
		DisplayName: "Terraform AzureRM provider",
		Folder:      "/website/docs/",
		Icon:        "terraform.svg",
	},
}

// Default returns the registry of curated documentation repositories.
func Default() *Registry {
	reg, err := New(defaultRepositories...)
	if err != nil {
		panic(err)
	}
	return reg
}
