// Package homepage embeds the console home page (usage steps and model
// pricing) into a host application.
//
// # Mounting the page
//
//	page, _ := homepage.New(homepage.WithLocale("zh"))
//	mux.Handle("/home/", http.StripPrefix("/home", page.Handler()))
//
// # Rendering without HTTP
//
//	doc, _ := page.Document(ctx, "en")
//	_ = page.WriteHTML(ctx, w, "")
package homepage
