package project

// Demo returns a small sample project tree. It is used by `cppsmith new
// --demo` so a first-time user has something to explore and generate
// immediately.
func Demo(name string) *Project {
	clientApp := NewClass("client_app")
	clientApp.PublicFunctions = append(clientApp.PublicFunctions,
		Function{Name: "render_app", Description: "Main rendering routine used to render the application"},
		Function{Name: "render_overlay", Description: "Draws the 2D overlay over the main window"},
	)
	clientApp.PublicVariables = append(clientApp.PublicVariables,
		"std::unique_ptr<ClientState> m_ClientState = nullptr",
	)
	clientApp.PrivateFunctions = append(clientApp.PrivateFunctions,
		Function{Name: "render_background_color"},
	)
	clientApp.PrivateVariables = append(clientApp.PrivateVariables,
		"Renderer* m_Renderer",
		"Window* m_Window",
	)

	ui := NewModule("ui")
	ui.Classes = append(ui.Classes, clientApp, NewClass("panels"))

	network := NewModule("network")
	network.Classes = append(network.Classes, NewClass("Packets"), NewClass("NetworkManager"))

	utils := NewModule("utils")
	utils.Classes = append(utils.Classes, NewClass("Logger"))

	p := NewProject(name, "")
	p.Modules = append(p.Modules, ui, network, utils)
	return p
}
