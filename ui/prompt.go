package ui

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/railwayapp/cli/entity"
)

func PromptText(text string) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
	}
	return prompt.Run()
}

func PromptProjects(projects []*entity.Project) (*entity.Project, error) {
	prompt := promptui.Select{
		Label: "Select Project",
		Items: projects,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Name | underline }}`,
			Inactive: `{{ .Name }}`,
			Selected: fmt.Sprintf("%s Project: {{ .Name | magenta | bold }} ", GreenText("✔")),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return projects[i], nil
}

func PromptEnvironments(environments []*entity.Environment) (*entity.Environment, error) {
	greenCheck := GreenText("✔")
	if len(environments) == 1 {
		environment := environments[0]
		fmt.Printf("%s Environment: %s\n", greenCheck, BlueText(environment.Name))
		return environment, nil
	}
	prompt := promptui.Select{
		Label: "Select Environment",
		Items: environments,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Name | underline }}`,
			Inactive: `{{ .Name }}`,
			Selected: fmt.Sprintf("%s Environment: {{ .Name | blue | bold }} ", greenCheck),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return environments[i], nil
}

func PromptServices(services []*entity.Service) (*entity.Service, error) {
	prompt := promptui.Select{
		Label: "Select Service",
		Items: services,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Name | underline }}`,
			Inactive: `{{ .Name }}`,
			Selected: fmt.Sprintf("%s Service: {{ .Name | cyan | bold }} ", GreenText("✔")),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return services[i], nil
}
