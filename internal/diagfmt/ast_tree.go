package diagfmt

import (
	"fmt"
	"io"

	"github.com/nezdolik/reproto/internal/ast"
)

// PrintASTTree renders f as a box-drawing tree of declarations and members,
// the output of "reprotoparse parse --tree". It shows names and kinds, not
// every field (InspectAST covers that via a full reflective dump).
func PrintASTTree(w io.Writer, f *ast.File) {
	fmt.Fprintln(w, "File")
	for i, u := range f.Uses {
		printUse(w, u.Value, i == len(f.Uses)-1 && len(f.Decls) == 0, "")
	}
	for i, d := range f.Decls {
		printDecl(w, d, i == len(f.Decls)-1, "")
	}
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func childPrefix(prefix string, last bool) string {
	if last {
		return prefix + "    "
	}
	return prefix + "│   "
}

func printUse(w io.Writer, u ast.UseDecl, last bool, prefix string) {
	name := "use <error>"
	if parts, ok := u.Package.Value.(ast.PackageParts); ok {
		name = "use"
		for _, p := range parts.Parts {
			name += " " + p.Value
		}
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, branch(last), name)
}

func printDecl(w io.Writer, d ast.Decl, last bool, prefix string) {
	switch decl := d.(type) {
	case *ast.EnumDecl:
		fmt.Fprintf(w, "%s%sEnum %s\n", prefix, branch(last), decl.Body.Value.Name.Value)
		cp := childPrefix(prefix, last)
		for i, v := range decl.Body.Value.Variants {
			fmt.Fprintf(w, "%s%sVariant %s\n", cp, branch(i == len(decl.Body.Value.Variants)-1), v.Body.Value.Name.Value)
		}
	case *ast.InterfaceDecl:
		fmt.Fprintf(w, "%s%sInterface %s\n", prefix, branch(last), decl.Body.Value.Name.Value)
		cp := childPrefix(prefix, last)
		for i, st := range decl.Body.Value.SubTypes {
			fmt.Fprintf(w, "%s%sSubType %s\n", cp, branch(i == len(decl.Body.Value.SubTypes)-1), st.Body.Value.Name.Value)
		}
	case *ast.TypeDecl:
		fmt.Fprintf(w, "%s%sType %s\n", prefix, branch(last), decl.Body.Value.Name.Value)
		printTypeMembers(w, decl.Body.Value.Members, childPrefix(prefix, last))
	case *ast.TupleDecl:
		fmt.Fprintf(w, "%s%sTuple %s\n", prefix, branch(last), decl.Body.Value.Name.Value)
		printTypeMembers(w, decl.Body.Value.Members, childPrefix(prefix, last))
	case *ast.ServiceDecl:
		fmt.Fprintf(w, "%s%sService %s\n", prefix, branch(last), decl.Body.Value.Name.Value)
		cp := childPrefix(prefix, last)
		for i, m := range decl.Body.Value.Members {
			last := i == len(decl.Body.Value.Members)-1
			switch mem := m.(type) {
			case ast.EndpointMember:
				fmt.Fprintf(w, "%s%sEndpoint %s\n", cp, branch(last), mem.Item.Body.Value.ID.Value)
			case ast.ServiceInnerDecl:
				printDecl(w, mem.Decl, last, cp)
			}
		}
	default:
		fmt.Fprintf(w, "%s%s<unknown decl>\n", prefix, branch(last))
	}
}

func printTypeMembers(w io.Writer, members []ast.TypeMember, prefix string) {
	for i, m := range members {
		last := i == len(members)-1
		switch mem := m.(type) {
		case ast.FieldMember:
			f := mem.Item.Body.Value
			opt := ""
			if !f.Required {
				opt = "?"
			}
			fmt.Fprintf(w, "%s%sField %s%s\n", prefix, branch(last), f.Name.Value, opt)
		case ast.CodeMember:
			fmt.Fprintf(w, "%s%sCode\n", prefix, branch(last))
		case ast.InnerDeclMember:
			printDecl(w, mem.Decl, last, prefix)
		}
	}
}
