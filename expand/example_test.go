package expand_test

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/ava12/zen/expand"
	"github.com/ava12/zen/host/xmlhost"
)

func ExampleResult_Find() {
	r, e := expand.Expand("form#f>fieldset>input[name=a]+input.wide[name=b]^button.wide{Send}")
	if e != nil {
		panic(e)
	}

	found, _ := r.Find(".wide")
	for _, el := range found {
		fmt.Println(el.Tag())
	}

	// Output:
	// input
	// button
}

func ExampleResult_AttachTo() {
	r, e := expand.Expand("item[key=a]{first}+item[key=b]{second}")
	if e != nil {
		panic(e)
	}

	doc := etree.NewDocument()
	list := doc.CreateElement("list")
	if e = r.AttachTo(xmlhost.New(), list); e != nil {
		panic(e)
	}

	s, _ := doc.WriteToString()
	fmt.Println(s)

	// Output:
	// <list><item key="a">first</item><item key="b">second</item></list>
}
