package vdom

// Element factory functions. Each wraps El with a fixed tag.

// Div creates a <div> element.
func Div(args ...any) *VNode { return El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return El("span", args...) }

// P creates a <p> element.
func P(args ...any) *VNode { return El("p", args...) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return El("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *VNode { return El("h2", args...) }

// H3 creates an <h3> element.
func H3(args ...any) *VNode { return El("h3", args...) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return El("ul", args...) }

// Ol creates an <ol> element.
func Ol(args ...any) *VNode { return El("ol", args...) }

// Li creates a <li> element.
func Li(args ...any) *VNode { return El("li", args...) }

// A creates an <a> element.
func A(args ...any) *VNode { return El("a", args...) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return El("button", args...) }

// Input creates an <input> element.
func Input(args ...any) *VNode { return El("input", args...) }

// Form creates a <form> element.
func Form(args ...any) *VNode { return El("form", args...) }

// Label creates a <label> element.
func Label(args ...any) *VNode { return El("label", args...) }

// Img creates an <img> element.
func Img(args ...any) *VNode { return El("img", args...) }

// Br creates a <br> element.
func Br(args ...any) *VNode { return El("br", args...) }

// Hr creates an <hr> element.
func Hr(args ...any) *VNode { return El("hr", args...) }

// Table creates a <table> element.
func Table(args ...any) *VNode { return El("table", args...) }

// Tr creates a <tr> element.
func Tr(args ...any) *VNode { return El("tr", args...) }

// Td creates a <td> element.
func Td(args ...any) *VNode { return El("td", args...) }

// Th creates a <th> element.
func Th(args ...any) *VNode { return El("th", args...) }

// Section creates a <section> element.
func Section(args ...any) *VNode { return El("section", args...) }

// Header creates a <header> element.
func Header(args ...any) *VNode { return El("header", args...) }

// Footer creates a <footer> element.
func Footer(args ...any) *VNode { return El("footer", args...) }

// Nav creates a <nav> element.
func Nav(args ...any) *VNode { return El("nav", args...) }

// Main creates a <main> element.
func Main(args ...any) *VNode { return El("main", args...) }
